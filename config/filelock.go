package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const lockFileName = "state.lock"

// FileLock is a cross-process lock on a sibling lock file, so the data file
// itself can be replaced by rename while locked.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a lock living next to path.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: filepath.Join(filepath.Dir(path), lockFileName)}
}

// Lock blocks until an exclusive lock is held.
func (l *FileLock) Lock() error {
	return l.acquire(os.O_CREATE|os.O_RDWR, true)
}

// RLock blocks until a shared lock is held.
func (l *FileLock) RLock() error {
	return l.acquire(os.O_CREATE|os.O_RDONLY, false)
}

func (l *FileLock) acquire(flag int, exclusive bool) error {
	if l.file != nil {
		return fmt.Errorf("lock already held")
	}
	f, err := os.OpenFile(l.path, flag, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	if err := lockFile(f, exclusive); err != nil {
		f.Close()
		kind := "shared"
		if exclusive {
			kind = "exclusive"
		}
		return fmt.Errorf("failed to acquire %s lock: %w", kind, err)
	}
	l.file = f
	return nil
}

// Unlock releases the lock. Unlocking a lock that is not held is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	if err := unlockFile(l.file); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}
	l.file = nil
	return nil
}
