package auxv

import (
	"fmt"
	"iter"
	"unsafe"

	"gni.dev/auxv/internal/peek"
)

const (
	wordSize  = unsafe.Sizeof(uintptr(0))
	entrySize = 2 * wordSize // key word followed by value word

	// maxEntries bounds the terminator scan. Real vectors hold a few
	// dozen entries; running past this means the memory is not a vector.
	maxEntries = 1 << 12
)

// Entry is one decoded key/value pair. It doubles as the mutation handle:
// the address it was decoded from identifies the live slot SetValue
// overwrites, so an Entry is only meaningful to the Vector that yielded it.
type Entry struct {
	Key   Key
	Value uintptr

	addr uintptr // address of the entry's key word in the live vector
}

// String formats the entry for display, honoring the key's value kind.
func (e Entry) String() string {
	switch e.Key.Kind() {
	case KindAddress, KindFlags, KindUnknown:
		return fmt.Sprintf("%s = %#x", e.Key, e.Value)
	case KindBoolean:
		return fmt.Sprintf("%s = %t", e.Key, e.Value != 0)
	default:
		return fmt.Sprintf("%s = %d", e.Key, e.Value)
	}
}

// Vector is a view over an auxiliary vector in this process's memory.
// Obtain one from Current, FromEnviron or At; the zero Vector is not
// usable. A Vector holds no reference the garbage collector can see, so
// views over Go-allocated memory (synthetic vectors in tests) must keep
// the backing allocation alive themselves.
//
// Each iteration records its outcome on the Vector (see Err), so
// iterations over the same Vector must not be interleaved across
// goroutines even when nothing mutates; give each goroutine its own view
// of the base or serialize all calls.
type Vector struct {
	base uintptr
	end  uintptr // terminator key address, set by the most recent scan
	err  error   // failure of the most recent iteration
}

// At returns a view over the auxiliary vector starting at base.
//
// The caller must guarantee that base is the first key word of a
// sequence of word pairs terminated by a zero key in this process's
// address space, and that the memory stays mapped and alive for the
// lifetime of the view. Anything else is undefined behavior this package
// cannot detect.
func At(base unsafe.Pointer) *Vector {
	return &Vector{base: uintptr(base)}
}

// All returns the entries in kernel layout order, terminator excluded.
//
// The sequence is lazy and restartable: every range over it re-reads the
// live memory, so a value changed by SetValue is observed by the next
// pass. If no terminator appears within the scan bound the sequence ends
// early and Err reports a *ScanLimitError.
func (v *Vector) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		v.err = nil
		addr := v.base
		for range maxEntries {
			key := peek.Word(addr)
			if key == 0 {
				v.end = addr
				return
			}
			e := Entry{Key: Key(key), Value: peek.Word(addr + wordSize), addr: addr}
			if !yield(e) {
				return
			}
			addr += entrySize
		}
		v.err = &ScanLimitError{Region: "auxv", Scanned: addr - v.base}
	}
}

// Err returns the failure of the most recent iteration started by All,
// or nil if it reached the terminator or was stopped by the caller.
func (v *Vector) Err() error {
	return v.err
}

// Entries decodes the whole vector eagerly.
func (v *Vector) Entries() ([]Entry, error) {
	var out []Entry
	for e := range v.All() {
		out = append(out, e)
	}
	return out, v.err
}

// Lookup returns the value of the first entry with key k, and whether
// such an entry exists. A vector that fails to scan has no entries.
func (v *Vector) Lookup(k Key) (uintptr, bool) {
	for e := range v.All() {
		if e.Key == k {
			return e.Value, true
		}
	}
	return 0, false
}

// scan walks to the terminator and records the mutation bounds without
// decoding anything.
func (v *Vector) scan() error {
	addr := v.base
	for range maxEntries {
		if peek.Word(addr) == 0 {
			v.end = addr
			return nil
		}
		addr += entrySize
	}
	return &ScanLimitError{Region: "auxv", Scanned: addr - v.base}
}
