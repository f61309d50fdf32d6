package auxv

import (
	"sync"
	"unsafe"
)

// runtimeAuxv returns the runtime's view of the auxiliary vector: the
// key/value words the kernel left after environ, excluding the terminator
// pair. On the normal ELF startup path the slice aliases the live block on
// the initial stack, which is what lets SetValue reach the vector every
// later reader in the process sees.
//
//go:linkname runtimeAuxv runtime.getAuxv
func runtimeAuxv() []uintptr

var current = sync.OnceValues(locate)

// Current returns the live auxiliary vector of the calling process. The
// location is computed once and cached for the process lifetime; the
// kernel never relocates the region. Processes whose runtime was not
// handed a startup block (unusual embeddings) get ErrNoEnviron.
func Current() (*Vector, error) {
	return current()
}

func locate() (*Vector, error) {
	raw := runtimeAuxv()
	if len(raw) < 2 {
		return nil, ErrNoEnviron
	}
	v := &Vector{base: uintptr(unsafe.Pointer(&raw[0]))}
	if err := v.scan(); err != nil {
		return nil, err
	}
	return v, nil
}
