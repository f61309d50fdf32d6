// Package peek is the only place in the module that touches raw addresses.
// It offers single-word and single-byte loads plus one word store; the
// layers above it own all scan bounds and deal only in values these return.
package peek

import (
	"errors"
	"unsafe"
)

const wordSize = unsafe.Sizeof(uintptr(0))

// ErrFault reports a store the kernel refused: the target is unmapped or
// its page lacks write permission.
var ErrFault = errors.New("peek: memory fault")

// Word loads the pointer-sized word at addr. The caller guarantees addr is
// mapped readable for at least one word.
func Word(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}

// Byte loads the byte at addr. The caller guarantees addr is mapped
// readable.
func Byte(addr uintptr) byte {
	return *(*byte)(unsafe.Pointer(addr))
}
