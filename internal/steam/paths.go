package steam

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// CandidatePaths returns the known Steam install locations under home, in search order.
func CandidatePaths(home string) []string {
	return lo.Map(candidateDirs, func(dir string, _ int) string {
		return filepath.Join(home, dir)
	})
}

// IsValidInstallPath reports whether steamPath exists and contains every marker file.
// Empty installs (a bare ~/.steam left behind by the bootstrapper) are rejected.
func IsValidInstallPath(steamPath string) bool {
	if !exists(steamPath) {
		return false
	}
	for _, marker := range markerFiles {
		if !exists(filepath.Join(steamPath, marker)) {
			return false
		}
	}
	return true
}

// FindInstallPath returns the Steam install directory under home, or "" if none validates.
// ~/.steam/root and ~/.steam/steam are usually symlinks to the real install, so more than
// one candidate can match; the last one in search order is returned.
func FindInstallPath(home string) string {
	found, _, ok := lo.FindLastIndexOf(CandidatePaths(home), IsValidInstallPath)
	if !ok {
		return ""
	}
	return found
}

// LocalStoragePath returns the Local Storage LevelDB directory of a Steam install.
func LocalStoragePath(steamPath string) string {
	return filepath.Join(steamPath, filepath.FromSlash(LocalStorageDir))
}

// exists follows symlinks, so a dangling link does not count.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
