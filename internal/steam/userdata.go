package steam

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// minUserIDLen excludes the "0" and "ac" directories Steam keeps next to real accounts.
const minUserIDLen = 3

// GuessUserID returns the first directory name under <steamPath>/userdata that looks
// like a Steam user ID. It returns "" when none qualifies.
func GuessUserID(steamPath string) (string, error) {
	entries, err := readUserData(steamPath)
	if err != nil {
		return "", err
	}

	userDataPath := filepath.Join(steamPath, UserDataDir)
	entry, ok := lo.Find(entries, func(entry os.DirEntry) bool {
		return isUserIDDir(entry, userDataPath)
	})
	if !ok {
		return "", nil
	}
	return entry.Name(), nil
}

// ListUserIDs returns every directory name under <steamPath>/userdata that looks like a
// Steam user ID, in lexical order.
func ListUserIDs(steamPath string) ([]string, error) {
	entries, err := readUserData(steamPath)
	if err != nil {
		return nil, err
	}

	userDataPath := filepath.Join(steamPath, UserDataDir)
	return lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), isUserIDDir(entry, userDataPath)
	}), nil
}

func readUserData(steamPath string) ([]os.DirEntry, error) {
	userDataPath := filepath.Join(steamPath, UserDataDir)
	entries, err := os.ReadDir(userDataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read Steam userdata directory: %w", err)
	}
	return entries, nil
}

func isUserIDDir(entry os.DirEntry, parentDir string) bool {
	return len(entry.Name()) >= minUserIDLen && isDirOrSymlink(entry, parentDir)
}

// isDirOrSymlink reports whether the entry is a directory or a symlink that resolves
// to one.
func isDirOrSymlink(entry os.DirEntry, parentDir string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parentDir, entry.Name()))
	return err == nil && info.IsDir()
}
