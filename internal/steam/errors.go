package steam

import "errors"

var (
	// ErrInstallNotFound is returned when no candidate install directory validates.
	ErrInstallNotFound = errors.New("could not find Steam install path")

	// ErrUserIDUnknown is returned when no Steam user ID was supplied and none could be guessed.
	ErrUserIDUnknown = errors.New("could not determine Steam user ID")

	// ErrStoreUnavailable is returned when the Local Storage LevelDB cannot be opened,
	// either because it is missing or because Steam holds its lock.
	ErrStoreUnavailable = errors.New("could not open Local Storage database")

	// ErrRecordNotFound is returned when no key matches the cloud storage namespace.
	ErrRecordNotFound = errors.New("collections record not found")

	// ErrMalformedRecord is returned when the matched value has no '['.
	ErrMalformedRecord = errors.New("collections record has no JSON array")
)
