package csrf

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// signer computes and verifies HMAC-SHA256 signatures over token
// material. The key is copied at construction and never mutated, so a
// single signer is safe for concurrent use across requests.
type signer struct {
	key []byte
}

func newSigner(key []byte) (*signer, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidKey, KeyLength, len(key))
	}
	k := make([]byte, KeyLength)
	copy(k, key)
	return &signer{key: k}, nil
}

// sign returns the hex-encoded MAC of material.
func (s *signer) sign(material string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(material))
	return hex.EncodeToString(mac.Sum(nil))
}

// verify recomputes the MAC for material and compares it against sig in
// constant time.
func (s *signer) verify(material, sig string) bool {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(material))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(sig))
}
