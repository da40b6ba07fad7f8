package picker

import (
	"bytes"
	"io"
)

// FileHandle is the full content of one picked file.
//
// A FileHandle is a small value that points at shared, immutable storage:
// copying it or calling Clone never copies the bytes. There is no way to
// change the content once the handle exists. The zero value is an empty file.
type FileHandle struct {
	c *content
}

type content struct {
	data []byte
}

// newFileHandle copies a borrowed buffer into a fresh handle.
func newFileHandle(borrowed []byte) FileHandle {
	data := make([]byte, len(borrowed))
	copy(data, borrowed)
	return FileHandle{c: &content{data: data}}
}

func (h FileHandle) bytes() []byte {
	if h.c == nil {
		return nil
	}
	return h.c.data
}

// Clone returns a handle sharing the same storage.
func (h FileHandle) Clone() FileHandle {
	return h
}

// Len returns the size of the file in bytes.
func (h FileHandle) Len() int {
	return len(h.bytes())
}

// Bytes returns a copy of the content.
func (h FileHandle) Bytes() []byte {
	out := make([]byte, h.Len())
	copy(out, h.bytes())
	return out
}

// Reader returns a reader over the content.
func (h FileHandle) Reader() *bytes.Reader {
	return bytes.NewReader(h.bytes())
}

// WriteTo writes the content to w.
func (h FileHandle) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.bytes())
	return int64(n), err
}

// Equal reports whether both handles hold the same bytes.
func (h FileHandle) Equal(other FileHandle) bool {
	return bytes.Equal(h.bytes(), other.bytes())
}

// Same reports whether both handles share storage.
func (h FileHandle) Same(other FileHandle) bool {
	return h.c == other.c
}
