//go:build !windows

package securemem

import "golang.org/x/sys/unix"

// lockMemory pins buf's pages in RAM so secret material (a secret
// mid-split, polynomial coefficients) cannot be written to swap. Failure
// is reported rather than fatal: RLIMIT_MEMLOCK is commonly near zero in
// containers, and an unlocked buffer still gets the multi-pass clear.
func lockMemory(buf []byte) bool {
	return len(buf) > 0 && unix.Mlock(buf) == nil
}

// unlockMemory releases the pin before the buffer is freed.
func unlockMemory(buf []byte) {
	if len(buf) > 0 {
		_ = unix.Munlock(buf)
	}
}
