package picker

import (
	"bytes"
	"fmt"
)

// ExtensionList is a filter of filename extensions laid out the way the
// native boundary wants them: every entry is a NUL-terminated copy, packed in
// one buffer. It is only meant to live for the duration of one ShowBrowser call.
type ExtensionList struct {
	buf  []byte
	offs []int
}

// MarshalExtensions copies extensions into an ExtensionList.
// An extension containing a NUL byte is a caller bug and panics.
func MarshalExtensions(extensions []string) ExtensionList {
	size := 0
	for i, ext := range extensions {
		if idx := bytes.IndexByte([]byte(ext), 0); idx >= 0 {
			panic(fmt.Sprintf("picker: extension %d (%q) contains a NUL byte at offset %d", i, ext, idx))
		}
		size += len(ext) + 1
	}

	list := ExtensionList{
		buf:  make([]byte, 0, size),
		offs: make([]int, 0, len(extensions)+1),
	}
	for _, ext := range extensions {
		list.offs = append(list.offs, len(list.buf))
		list.buf = append(list.buf, ext...)
		list.buf = append(list.buf, 0)
	}
	list.offs = append(list.offs, len(list.buf))
	return list
}

// Len returns the number of extensions. An empty list means no restriction.
func (l ExtensionList) Len() int {
	if len(l.offs) == 0 {
		return 0
	}
	return len(l.offs) - 1
}

// At returns entry i including its terminating NUL.
func (l ExtensionList) At(i int) []byte {
	return l.buf[l.offs[i]:l.offs[i+1]:l.offs[i+1]]
}

// Strings returns the extensions without terminators.
func (l ExtensionList) Strings() []string {
	out := make([]string, l.Len())
	for i := range out {
		entry := l.At(i)
		out[i] = string(entry[:len(entry)-1])
	}
	return out
}
