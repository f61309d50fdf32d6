package auxv

import (
	"unsafe"

	"gni.dev/auxv/internal/peek"
)

// maxEnvSlots bounds the environment pointer array scan.
const maxEnvSlots = 1 << 16

// FromEnviron locates the vector from the environment pointer array that
// precedes it in the startup block: the array is walked one pointer-sized
// slot at a time until its NULL terminator, and the vector begins at the
// word that follows.
//
// environ must be the address of the array's first element as published
// by a C-compatible startup layer (the `environ` symbol of a hosting C
// runtime). A nil anchor returns ErrNoEnviron before any memory is read.
func FromEnviron(environ unsafe.Pointer) (*Vector, error) {
	if environ == nil {
		return nil, ErrNoEnviron
	}
	anchor := uintptr(environ)
	limit := anchor + maxEnvSlots*wordSize

	addr := anchor
	for peek.Word(addr) != 0 {
		addr += wordSize
		if addr == limit {
			return nil, &ScanLimitError{Region: "environ", Scanned: addr - anchor}
		}
	}

	v := &Vector{base: addr + wordSize}
	if err := v.scan(); err != nil {
		return nil, err
	}
	return v, nil
}
