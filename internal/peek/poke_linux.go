package peek

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// PokeWord stores value at addr. The store is routed through
// process_vm_writev aimed at our own pid, so a page that is unmapped or
// not writable comes back as ErrFault instead of delivering SIGSEGV,
// which a library has no sane way to catch.
func PokeWord(addr, value uintptr) error {
	buf := (*[wordSize]byte)(unsafe.Pointer(&value))

	local := make([]unix.Iovec, 1)
	local[0].Base = &buf[0]
	local[0].SetLen(int(wordSize))
	remote := []unix.RemoteIovec{{Base: addr, Len: int(wordSize)}}

	n, err := unix.ProcessVMWritev(os.Getpid(), local, remote, 0)
	switch {
	case errors.Is(err, unix.EFAULT):
		return fmt.Errorf("%w: %#x", ErrFault, addr)
	case err != nil:
		return fmt.Errorf("peek: process_vm_writev: %w", err)
	case n != int(wordSize):
		// Short write: the word straddles an unwritable page.
		return fmt.Errorf("%w: %#x", ErrFault, addr)
	}
	return nil
}
