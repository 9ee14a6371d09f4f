package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudStorageNeedles(t *testing.T) {
	assert.Equal(t, []string{
		"https://steamloopback.host",
		"U76561198000000000-cloud-storage-namespace",
	}, CloudStorageNeedles("76561198000000000"))
}

func TestExtractFragment(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"prefix junk", "prefix-junk[1,2,3]", "[1,2,3]"},
		{"no prefix", "[]", "[]"},
		{"first bracket wins", "\x01[[\"a\"],[\"b\"]]", "[[\"a\"],[\"b\"]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFragment([]byte(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFragmentMalformed(t *testing.T) {
	_, err := ExtractFragment([]byte(`{"no":"array"}`))
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = ExtractFragment(nil)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
