//go:build windows

package fileverse

import (
	"syscall"
	"unsafe"
)

var (
	kernel32         = syscall.NewLazyDLL("kernel32.dll")
	procLockFileEx   = kernel32.NewProc("LockFileEx")
	procUnlockFileEx = kernel32.NewProc("UnlockFileEx")
)

const lockfileExclusiveLock = 0x00000002

// The whole addressable range is locked; the lock file carries no data.
func (l *fileLock) lock() error {
	var ol syscall.Overlapped
	r, _, err := procLockFileEx.Call(l.f.Fd(), lockfileExclusiveLock, 0, 0xFFFFFFFF, 0xFFFFFFFF, uintptr(unsafe.Pointer(&ol)))
	if r == 0 {
		return err
	}
	return nil
}

func (l *fileLock) unlock() error {
	var ol syscall.Overlapped
	r, _, err := procUnlockFileEx.Call(l.f.Fd(), 0, 0xFFFFFFFF, 0xFFFFFFFF, uintptr(unsafe.Pointer(&ol)))
	if r == 0 {
		return err
	}
	return nil
}
