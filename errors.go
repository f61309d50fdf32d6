package auxv

import (
	"errors"
	"fmt"
)

// ErrNoEnviron is returned when the startup block holding environ and the
// auxiliary vector cannot be located. The condition is structural: the
// block either was or was not set up when the process started, so retrying
// cannot change the outcome.
var ErrNoEnviron = errors.New("auxv: environment block unavailable")

// ErrMemoryProtected is returned by SetValue when the kernel refuses the
// write, which means the page holding the vector is not mapped writable.
var ErrMemoryProtected = errors.New("auxv: vector memory not writable")

// ScanLimitError reports a terminator that was not found within the scan
// bound. It indicates a corrupted or non-standard process image and is
// fatal to the operation that hit it.
type ScanLimitError struct {
	Region  string  // "environ", "auxv" or "string"
	Scanned uintptr // bytes examined before giving up
}

func (e *ScanLimitError) Error() string {
	return fmt.Sprintf("auxv: no terminator in %s after scanning %d bytes", e.Region, e.Scanned)
}

// MutationTargetError reports a mutation handle whose address lies outside
// the bounds established by the vector's most recent scan. The write is
// rejected before any memory is touched.
type MutationTargetError struct {
	Addr      uintptr // address carried by the rejected handle
	Low, High uintptr // entry bounds of the vector, [Low, High)
}

func (e *MutationTargetError) Error() string {
	return fmt.Sprintf("auxv: entry address %#x outside vector [%#x, %#x)", e.Addr, e.Low, e.High)
}
