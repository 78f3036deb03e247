//go:build !linux

package pin

// Alloc falls back to ordinary heap memory on platforms without page
// locking. The pinned attribute on the resulting tensor still reflects the
// caller's request so that device placement logic stays uniform.
func Alloc(n int) ([]byte, func(), error) {
	return make([]byte, n), func() {}, nil
}
