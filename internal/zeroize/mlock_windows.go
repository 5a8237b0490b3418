//go:build windows

package zeroize

import "golang.org/x/sys/windows"

// mlock attempts to lock the memory region containing data via
// VirtualLock so it is never swapped to disk. Returns true if
// successful, false otherwise; failure is never fatal, only
// best-effort.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return windows.VirtualLock(&data[0], uintptr(len(data))) == nil
}

// munlock unlocks the memory region.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = windows.VirtualUnlock(&data[0], uintptr(len(data)))
}
