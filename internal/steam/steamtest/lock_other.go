//go:build !unix

// Package steamtest holds test helpers for code that reads Steam's Local Storage.
package steamtest

import "testing"

func MaybeHoldLock() {}

func HoldLock(t *testing.T, path string) {
	t.Helper()
	t.Skip("fcntl locks are only available on unix")
}
