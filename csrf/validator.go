package csrf

import "crypto/subtle"

// validator checks signed tokens against the signing key.
type validator struct {
	signer *signer
}

// extractRaw decodes token, verifies its embedded signature and returns
// the raw value. Malformed input and bad signatures are
// indistinguishable to the caller; both are a plain miss.
func (v *validator) extractRaw(token string) (string, bool) {
	raw, nonce, sig, ok := decodeToken(token)
	if !ok {
		return "", false
	}
	if !v.signer.verify(raw+tokenDelim+nonce, sig) {
		return "", false
	}
	return raw, true
}

// tokensMatch requires both tokens to carry valid signatures over the
// same raw value, and returns that raw value. Equality is checked at
// the raw level, not the full wire string, since the nonce and
// signature differ between the cookie and header copies once either has
// been rotated.
func (v *validator) tokensMatch(a, b string) (string, bool) {
	rawA, okA := v.extractRaw(a)
	rawB, okB := v.extractRaw(b)
	if !okA || !okB {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(rawA), []byte(rawB)) != 1 {
		return "", false
	}
	return rawA, true
}
