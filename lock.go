// OS-level locking of an index for the duration of one Store.
//
// Index and target files are replaced by rename on every write, so a lock
// held on either of them would be orphaned by the first write. Each index
// therefore has a companion .lock file that is never renamed or removed;
// fileLock holds flock(2) / LockFileEx on it.
//
// The mutex serialises flock syscalls against setFile so that Close cannot
// invalidate the descriptor mid-syscall.
package fileverse

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type fileLock struct {
	mu sync.Mutex
	f  *os.File
}

// acquire opens (creating it and its directory if needed) the lock file
// for index and takes an exclusive lock on it, blocking while another
// process holds it.
func acquire(index string) (*fileLock, error) {
	if err := os.MkdirAll(filepath.Dir(index), 0755); err != nil {
		return nil, fmt.Errorf("lock: mkdir: %w", err)
	}
	f, err := os.OpenFile(index+".lock", os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("lock: open: %w", err)
	}
	l := &fileLock{f: f}
	if err := l.Lock(); err != nil {
		f.Close()
		return nil, fmt.Errorf("lock: %w", err)
	}
	return l, nil
}

// Lock acquires an exclusive flock. Returns nil immediately
// if the handle has been cleared via setFile(nil).
func (l *fileLock) Lock() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	return l.lock()
}

// Unlock releases the flock. Returns nil immediately if the handle
// has been cleared via setFile(nil).
func (l *fileLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	return l.unlock()
}

// release unlocks and closes the lock file. Later calls are no-ops.
func (l *fileLock) release() error {
	if err := l.Unlock(); err != nil {
		return err
	}
	l.mu.Lock()
	f := l.f
	l.mu.Unlock()
	l.setFile(nil)
	if f == nil {
		return nil
	}
	return f.Close()
}

// setFile swaps the underlying file handle. Passing nil drains any
// in-flight flock and disables further locking.
func (l *fileLock) setFile(f *os.File) {
	l.mu.Lock()
	l.f = f
	l.mu.Unlock()
}
