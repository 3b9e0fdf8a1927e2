package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// The lock only guards the settings file, hosts file writes are not locked.
func makeLockFile() *flock.Flock {
	return flock.New(filepath.Join(Home(), "config.lock"))
}

var lockFile *flock.Flock
var lockCount int
var lockMutex sync.Mutex

func tryLockLocked() (err error) {
	if lockFile == nil {
		lockFile = makeLockFile()
		lockCount = 0
	}

	if lockCount == 0 {
		var ok bool
		ok, err = lockFile.TryLock()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("settings are being changed by another process")
		}
	}

	lockCount++
	return nil
}
func unlockLocked() {
	lockCount--
	if lockCount < 0 {
		panic("lock count < 0")
	}

	if lockCount == 0 {
		lockFile.Unlock()
		lockFile.Close()
		lockFile = nil
	}
}

func WithLock(f func() error) error {
	lockMutex.Lock()
	defer lockMutex.Unlock()
	err := tryLockLocked()
	if err != nil {
		return err
	}
	defer unlockLocked()
	return f()
}
