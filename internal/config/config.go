// Package config resolves the settings steam-collections reads from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvHome is the home directory the Steam install is searched under
	EnvHome = "HOME"

	// EnvUserID optionally pins the Steam user ID instead of guessing it
	EnvUserID = "STEAM_USER_ID"

	// DotEnvFile is loaded from the working directory when present
	DotEnvFile = ".env"
)

// ErrHomeNotSet is returned when the home directory variable is missing or empty.
var ErrHomeNotSet = errors.New(EnvHome + " is not set")

// Config holds the environment-derived settings for a run.
type Config struct {
	// Home is the user's home directory
	Home string

	// UserID is the Steam user ID from the environment (may be empty)
	UserID string
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads the configuration from the process environment after applying DotEnvFile.
func Load() (Config, error) {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return Config{}, err
	}
	return FromLookup(os.LookupEnv)
}

// LoadDotEnv applies the variables in path to the process environment. Variables that
// are already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// FromLookup builds a Config from lookup.
func FromLookup(lookup LookupFunc) (Config, error) {
	home, _ := lookup(EnvHome)
	if strings.TrimSpace(home) == "" {
		return Config{}, ErrHomeNotSet
	}

	userID, _ := lookup(EnvUserID)
	return Config{
		Home:   home,
		UserID: strings.TrimSpace(userID),
	}, nil
}
