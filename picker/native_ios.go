//go:build ios && cgo

package picker

/*
#cgo CFLAGS: -std=c11
#cgo LDFLAGS: -framework UIKit -framework UniformTypeIdentifiers -framework CoreFoundation -lpicker
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#include <CoreFoundation/CoreFoundation.h>

void *docpicker_show_browser(void *controller, const char **extensions, size_t count, bool allow_multiple, uintptr_t token);
*/
import "C"

import (
	"unsafe"
)

// NativeBrowser shows the UIKit document picker through the native shim.
// host must be the presenting UIViewController as an unsafe.Pointer.
//
// The native shim always reports back through goPickerCallback, so the cb
// argument of ShowBrowser is not used.
type NativeBrowser struct{}

func (NativeBrowser) ShowBrowser(host any, extensions ExtensionList, allowMultiple bool, _ Callback, token Token) Presenter {
	controller, _ := host.(unsafe.Pointer)

	n := extensions.Len()
	var ptrs **C.char
	if n > 0 {
		// Strings and the pointer array live in C memory for the duration
		// of the call only.
		buf := C.CBytes(extensions.buf)
		defer C.free(buf)
		ptrs = (**C.char)(C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(uintptr(0)))))
		defer C.free(unsafe.Pointer(ptrs))
		arr := unsafe.Slice(ptrs, n)
		for i := 0; i < n; i++ {
			arr[i] = (*C.char)(unsafe.Add(buf, extensions.offs[i]))
		}
	}

	obj := C.docpicker_show_browser(controller, ptrs, C.size_t(n), C.bool(allowMultiple), C.uintptr_t(token))
	return &nativePresenter{obj: obj}
}

// nativePresenter wraps the delegate object returned by the shim.
type nativePresenter struct {
	obj unsafe.Pointer
}

func (p *nativePresenter) Retain() {
	if p.obj != nil {
		C.CFRetain(C.CFTypeRef(p.obj))
	}
}

func (p *nativePresenter) Release() {
	if p.obj != nil {
		C.CFRelease(C.CFTypeRef(p.obj))
	}
}

//export goPickerCallback
func goPickerCallback(data unsafe.Pointer, n C.size_t, token C.uintptr_t) {
	var buf []byte
	if data != nil {
		buf = unsafe.Slice((*byte)(data), int(n))
	}
	sessions.deliver(buf, Token(token))
}
