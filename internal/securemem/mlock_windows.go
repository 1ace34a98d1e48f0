//go:build windows

package securemem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// lockMemory pins buf's pages in RAM so secret material (a secret
// mid-split, polynomial coefficients) cannot be written to the pagefile.
// Failure is reported rather than fatal: an unlocked buffer still gets
// the multi-pass clear.
func lockMemory(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf))) == nil
}

// unlockMemory releases the pin before the buffer is freed.
func unlockMemory(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = windows.VirtualUnlock(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
}
