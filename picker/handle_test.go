package picker

import (
	"bytes"
	"io"
	"testing"
)

func TestFileHandleCopiesBorrowedBuffer(t *testing.T) {
	buf := []byte("borrowed content")
	h := newFileHandle(buf)
	for i := range buf {
		buf[i] = 0
	}
	if got := string(h.Bytes()); got != "borrowed content" {
		t.Fatalf("handle content = %q, want %q", got, "borrowed content")
	}
}

func TestFileHandleCloneSharesStorage(t *testing.T) {
	h := newFileHandle([]byte{1, 2, 3, 4})
	c := h.Clone()

	if !c.Same(h) {
		t.Error("clone does not share storage with the original")
	}
	if !c.Equal(h) {
		t.Error("clone bytes differ from the original")
	}
	if c.Len() != 4 {
		t.Errorf("clone Len() = %d, want 4", c.Len())
	}

	other := newFileHandle([]byte{1, 2, 3, 4})
	if other.Same(h) {
		t.Error("independent handles report shared storage")
	}
	if !other.Equal(h) {
		t.Error("handles with identical bytes are not Equal")
	}
}

func TestFileHandleBytesReturnsCopy(t *testing.T) {
	h := newFileHandle([]byte("immutable"))
	b := h.Bytes()
	b[0] = 'X'
	if got := string(h.Bytes()); got != "immutable" {
		t.Fatalf("mutating Bytes() changed the handle: %q", got)
	}
}

func TestFileHandleReaders(t *testing.T) {
	h := newFileHandle([]byte("stream me"))

	got, err := io.ReadAll(h.Reader())
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "stream me" {
		t.Errorf("Reader() content = %q", got)
	}

	var out bytes.Buffer
	n, err := h.WriteTo(&out)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(h.Len()) || out.String() != "stream me" {
		t.Errorf("WriteTo wrote %d bytes %q", n, out.String())
	}
}

func TestZeroFileHandle(t *testing.T) {
	var h FileHandle
	if h.Len() != 0 {
		t.Errorf("zero handle Len() = %d", h.Len())
	}
	if len(h.Bytes()) != 0 {
		t.Errorf("zero handle Bytes() = %v", h.Bytes())
	}
	if h.Reader().Len() != 0 {
		t.Error("zero handle reader is not empty")
	}
	if !h.Equal(newFileHandle([]byte{})) {
		t.Error("zero handle should equal an empty file")
	}
}
