// fleetdesk/profile/name.go
package profile

import (
	"encoding/hex"
	"unicode/utf8"
)

// DecodeName turns an on-disk profile directory name into the player's
// profile name. The game stores the name as hex-encoded UTF-8; anything that
// is not an even-length run of hex pairs decoding to valid UTF-8 is returned
// unchanged.
func DecodeName(raw string) string {
	if len(raw)%2 != 0 {
		return raw
	}
	b := make([]byte, len(raw)/2)
	if _, err := hex.Decode(b, []byte(raw)); err != nil {
		return raw
	}
	if !utf8.Valid(b) {
		return raw
	}
	return string(b)
}

// EncodeName is the inverse of DecodeName: it produces the directory name the
// game would use for a profile called name.
func EncodeName(name string) string {
	return hex.EncodeToString([]byte(name))
}
