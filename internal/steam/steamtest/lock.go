//go:build unix

// Package steamtest holds test helpers for code that reads Steam's Local Storage.
package steamtest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"

	"golang.org/x/sys/unix"
)

// holdLockEnv tells a re-executed test binary to act as the lock holder.
const holdLockEnv = "STEAMTEST_HOLD_LOCK"

// MaybeHoldLock turns the current test binary into a lock holder when it was started by
// HoldLock. Call it first thing in TestMain.
func MaybeHoldLock() {
	path := os.Getenv(holdLockEnv)
	if path == "" {
		return
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	lk := unix.Flock_t{Type: unix.F_WRLCK, Whence: io.SeekStart}
	if err := unix.FcntlFlock(f.Fd(), unix.F_SETLK, &lk); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println("locked")

	// Hold the lock until the parent closes stdin.
	_, _ = io.Copy(io.Discard, os.Stdin)
	os.Exit(0)
}

// HoldLock starts another process that holds an exclusive fcntl lock on path, the way
// a running Steam holds its Local Storage LOCK. The lock is released when the test ends.
func HoldLock(t *testing.T, path string) {
	t.Helper()

	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), holdLockEnv+"="+path)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.Fatalf("stdin pipe: %v", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	if err := cmd.Start(); err != nil {
		t.Fatalf("start lock holder: %v", err)
	}
	t.Cleanup(func() {
		stdin.Close()
		_ = cmd.Wait()
	})

	line, err := bufio.NewReader(stdout).ReadString('\n')
	if err != nil || line != "locked\n" {
		t.Fatalf("lock holder did not take the lock: %q, %v", line, err)
	}
}
