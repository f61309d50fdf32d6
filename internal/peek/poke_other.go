//go:build !linux

package peek

import "unsafe"

// PokeWord stores value at addr directly. Off Linux the package only ever
// writes caller-owned synthetic vectors, which are ordinary writable Go
// memory; there is no kernel-mediated path to probe protection first.
func PokeWord(addr, value uintptr) error {
	*(*uintptr)(unsafe.Pointer(addr)) = value
	return nil
}
