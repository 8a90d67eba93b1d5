//go:build unix

package fileverse

import (
	"errors"
	"syscall"
)

func (l *fileLock) lock() error {
	return flock(int(l.f.Fd()), syscall.LOCK_EX)
}

func (l *fileLock) unlock() error {
	return flock(int(l.f.Fd()), syscall.LOCK_UN)
}

// flock blocks until the lock is granted, retrying when a signal
// interrupts the wait.
func flock(fd, op int) error {
	for {
		err := syscall.Flock(fd, op)
		if !errors.Is(err, syscall.EINTR) {
			return err
		}
	}
}
