package cmd

import "github.com/pterm/pterm"

// reportedError carries the one-line message shown to the user while keeping the
// underlying error reachable through errors.Is. The cause is only printed with --debug.
type reportedError struct {
	msg string
	err error
}

func (e reportedError) Error() string { return e.msg }

func (e reportedError) Unwrap() error { return e.err }

func userFacing(msg string, err error) error {
	pterm.Debug.Printf("%s: %v\n", msg, err)
	return reportedError{msg: msg, err: err}
}
