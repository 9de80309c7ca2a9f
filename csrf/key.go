package csrf

import (
	"errors"
	"fmt"

	"github.com/gorilla/securecookie"
)

// KeyLength is the signing key size in bytes required by the HMAC-SHA256 signer.
const KeyLength = 32

// ErrInvalidKey is returned when signing key material is missing or has
// the wrong length. It is the only error surfaced at construction time;
// per-request validation failures never produce errors.
var ErrInvalidKey = errors.New("csrf: invalid signing key")

// GenerateKey returns fresh random signing key material of KeyLength bytes.
//
// Returns:
// - a new key, or nil if the system random source is unavailable.
func GenerateKey() []byte {
	return securecookie.GenerateRandomKey(KeyLength)
}

// KeyFromBytes derives a signing key from externally supplied material,
// e.g. bytes loaded from an environment variable or a secrets store.
// Input longer than KeyLength is truncated; shorter input is rejected.
//
// Params:
// - b: raw key material, at least KeyLength bytes.
//
// Returns:
// - a KeyLength-byte key, or ErrInvalidKey if b is too short.
func KeyFromBytes(b []byte) ([]byte, error) {
	if len(b) < KeyLength {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidKey, KeyLength, len(b))
	}
	key := make([]byte, KeyLength)
	copy(key, b)
	return key, nil
}
