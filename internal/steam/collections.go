package steam

import (
	"bytes"
	"fmt"
)

// CloudStorageNeedles returns the substrings that together identify the key holding
// userID's cloud storage namespace (where the library keeps game collections).
// Chrome prefixes Local Storage keys with the origin and separator bytes, so the key
// is matched by containment rather than equality.
func CloudStorageNeedles(userID string) []string {
	return []string{
		LoopbackOrigin,
		fmt.Sprintf(cloudStorageNamespaceFormat, userID),
	}
}

// ExtractFragment strips everything before the first '[' of a Local Storage value.
// The remainder is not validated as JSON.
func ExtractFragment(value []byte) (string, error) {
	i := bytes.IndexByte(value, '[')
	if i < 0 {
		return "", ErrMalformedRecord
	}
	return string(value[i:]), nil
}
