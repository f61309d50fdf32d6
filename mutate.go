package auxv

import (
	"errors"
	"fmt"

	"gni.dev/auxv/internal/peek"
)

// SetValue overwrites the value word of e in place. The key word and the
// entry's position never change, and entries cannot be added or removed:
// the vector's byte length was fixed by the kernel at process start.
//
// e must have been yielded by an iteration of this same vector in this
// same process. Handles from another Vector or a stale copy of the region
// are caught only as far as the bounds check can see; beyond that the
// effect of a foreign handle is undefined. A write refused by memory
// protection reports ErrMemoryProtected.
//
// Later iterations observe the new value; nothing is cached between a
// write and the next read.
func (v *Vector) SetValue(e Entry, value uintptr) error {
	if v.end == 0 {
		if err := v.scan(); err != nil {
			return err
		}
	}
	if e.addr < v.base || e.addr >= v.end || (e.addr-v.base)%entrySize != 0 {
		return &MutationTargetError{Addr: e.addr, Low: v.base, High: v.end}
	}
	if err := peek.PokeWord(e.addr+wordSize, value); err != nil {
		if errors.Is(err, peek.ErrFault) {
			return fmt.Errorf("%w: %v", ErrMemoryProtected, err)
		}
		return err
	}
	return nil
}
