//go:build unix

package steam

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// LockFile is the lock LevelDB keeps next to its tables.
const LockFile = "LOCK"

// lockStore takes a non-blocking shared fcntl lock on the store's LOCK file. Chromium's
// leveldb holds an exclusive fcntl lock on it while Steam runs; goleveldb's own flock
// does not conflict with that, so this check has to happen first. The LOCK file is
// opened read-only and never created.
func lockStore(storePath string) (release func(), err error) {
	lockPath := filepath.Join(storePath, LockFile)
	f, err := os.Open(lockPath)
	if err != nil {
		return nil, err
	}

	lk := unix.Flock_t{Type: unix.F_RDLCK, Whence: io.SeekStart}
	if err := unix.FcntlFlock(f.Fd(), unix.F_SETLK, &lk); err != nil {
		f.Close()
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EACCES) {
			return nil, fmt.Errorf("%s is locked by another process: %w", lockPath, err)
		}
		return nil, fmt.Errorf("failed to lock %s: %w", lockPath, err)
	}

	// Closing the descriptor drops the fcntl lock.
	return func() { f.Close() }, nil
}
