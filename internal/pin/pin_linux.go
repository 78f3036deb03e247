//go:build linux

// Package pin allocates page-locked host memory. Locked pages cannot be
// swapped out, which lets accelerator drivers transfer from them without an
// intermediate staging copy.
package pin

import "golang.org/x/sys/unix"

// Alloc returns n bytes of page-locked memory and a function that releases
// it. A zero-length request returns an empty slice and a no-op release.
func Alloc(n int) ([]byte, func(), error) {
	if n == 0 {
		return nil, func() {}, nil
	}

	b, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}

	if err := unix.Mlock(b); err != nil {
		unix.Munmap(b)
		return nil, nil, err
	}

	free := func() {
		unix.Munlock(b)
		unix.Munmap(b)
	}
	return b[:n], free, nil
}
