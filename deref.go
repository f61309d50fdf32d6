package auxv

import "gni.dev/auxv/internal/peek"

// maxString bounds the NUL scan in ReadString.
const maxString = 1 << 12

// randomLen is the number of random bytes behind an AT_RANDOM value.
const randomLen = 16

// ReadString follows a KindAddress value to a NUL-terminated string, such
// as the values of Platform, BasePlatform and ExecFilename.
//
// This is a raw dereference: addr must come from an entry of this
// process's own vector, otherwise the read is undefined. A string that
// does not terminate within the scan bound returns a *ScanLimitError.
func ReadString(addr uintptr) (string, error) {
	buf := make([]byte, 0, 64)
	for i := uintptr(0); i < maxString; i++ {
		b := peek.Byte(addr + i)
		if b == 0 {
			return string(buf), nil
		}
		buf = append(buf, b)
	}
	return "", &ScanLimitError{Region: "string", Scanned: maxString}
}

// ReadRandom follows a Random entry's value to the 16 bytes of
// kernel-supplied randomness it points at. The same precondition as
// ReadString applies: addr must be a value decoded from this process's
// own vector.
func ReadRandom(addr uintptr) [randomLen]byte {
	var out [randomLen]byte
	for i := range out {
		out[i] = peek.Byte(addr + uintptr(i))
	}
	return out
}
