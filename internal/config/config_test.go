package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"HOME":          "/home/deck",
		"STEAM_USER_ID": " 76561198000000000 ",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/home/deck", cfg.Home)
	assert.Equal(t, "76561198000000000", cfg.UserID)
}

func TestFromLookupWithoutUserID(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{"HOME": "/home/deck"}))
	require.NoError(t, err)
	assert.Empty(t, cfg.UserID)
}

func TestFromLookupHomeNotSet(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{}))
	assert.ErrorIs(t, err, ErrHomeNotSet)

	_, err = FromLookup(lookupFrom(map[string]string{"HOME": "  "}))
	assert.ErrorIs(t, err, ErrHomeNotSet)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STEAM_USER_ID=111\nSTEAM_COLLECTIONS_TEST_VAR=from-file\n"), 0644))

	t.Setenv("STEAM_USER_ID", "222")
	t.Setenv("STEAM_COLLECTIONS_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("STEAM_COLLECTIONS_TEST_VAR"))

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "222", os.Getenv("STEAM_USER_ID"))
	assert.Equal(t, "from-file", os.Getenv("STEAM_COLLECTIONS_TEST_VAR"))
}
