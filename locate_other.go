//go:build !linux

package auxv

// Current fails closed off Linux: "the auxiliary vector follows environ"
// is an ELF startup convention, and guessing an address on platforms that
// do not guarantee it would scan arbitrary memory. Views over
// caller-supplied bases (At, FromEnviron) still work everywhere.
func Current() (*Vector, error) {
	return nil, ErrNoEnviron
}
