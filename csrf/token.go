package csrf

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// TokenLength is the number of random bytes drawn for a new raw token.
const TokenLength = 32

// tokenDelim separates the three token segments: raw-nonce-signature.
// Raw and signature are hex and the nonce is decimal, so the delimiter
// can never occur inside a segment and splitting is unambiguous.
const tokenDelim = "-"

// encodeToken joins raw token, nonce and signature into the wire format.
func encodeToken(raw, nonce, sig string) string {
	return raw + tokenDelim + nonce + tokenDelim + sig
}

// decodeToken splits a wire token into its three segments. Anything
// that does not split into exactly three non-empty segments is a miss,
// not an error; malformed tokens are rejected, never repaired.
func decodeToken(token string) (raw, nonce, sig string, ok bool) {
	parts := strings.Split(token, tokenDelim)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// tokenFactory mints signed tokens. Random material comes from the
// process-global crypto/rand reader, which is safe for concurrent draws
// and never reseeded. now supplies the nonce embedded in every
// signature.
type tokenFactory struct {
	signer *signer
	now    func() time.Time
}

// newToken draws fresh random material and signs it.
func (f *tokenFactory) newToken() (string, error) {
	b := make([]byte, TokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return f.signRaw(hex.EncodeToString(b)), nil
}

// signRaw issues a new nonce and signature for an already-known raw
// value. The raw token stays stable across a session so legitimate
// pages keep working, but the signed wire value changes every response,
// which denies compression-length oracles a fixed secret to extract.
func (f *tokenFactory) signRaw(raw string) string {
	nonce := strconv.FormatInt(f.now().UnixMilli(), 10)
	sig := f.signer.sign(raw + tokenDelim + nonce)
	return encodeToken(raw, nonce, sig)
}

func extractClientToken(r *http.Request, headerName, formField string) string {
	// Header wins
	if h := r.Header.Get(headerName); h != "" {
		return h
	}
	// Then try form (x-www-form-urlencoded / multipart)
	_ = r.ParseForm()
	if v := r.Form.Get(formField); v != "" {
		return v
	}
	return ""
}
