// Package csrf provides a signed double-submit-cookie CSRF protection middleware.
package csrf

import (
	"net/http"
	"time"
)

type Config struct {
	// Key is the HMAC signing key, exactly KeyLength bytes (see
	// GenerateKey and KeyFromBytes). If nil, a fresh random key is
	// generated; tokens then only survive for the lifetime of this
	// process.
	Key []byte

	// Cookie
	CookieName     string
	CookiePath     string
	CookieDomain   string
	CookieSecure   bool
	CookieHTTPOnly bool
	CookieSameSite http.SameSite
	CookieMaxAge   int // in seconds

	// Token transport
	HeaderName string // e.g.: "X-Csrf-Token"
	FormField  string // e.g.: "csrf_token"

	// Clock supplies the nonce embedded in every signature, so two
	// signed copies of the same raw token never share a wire value.
	// Defaults to time.Now.
	Clock func() time.Time

	// SafeMethod classifies methods that are exempt from double-submit
	// validation (they still get a token issued). If nil, GET, HEAD,
	// OPTIONS and TRACE are considered safe.
	SafeMethod func(method string) bool
}

type Protector struct {
	cfg       Config
	factory   *tokenFactory
	validator *validator
}

// New builds a Protector, applying defaults for unset Config fields.
// It fails only on key problems: a non-nil key of the wrong length is
// rejected with ErrInvalidKey. Validation failures at request time are
// never errors, only 401 responses.
func New(cfg Config) (*Protector, error) {
	// reasonable defaults
	if cfg.CookieName == "" {
		cfg.CookieName = "csrf-token"
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Csrf-Token"
	}
	if cfg.FormField == "" {
		cfg.FormField = "csrf_token"
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = "/"
	}
	// modern web security: SameSite=Lax is a good baseline
	if cfg.CookieSameSite == 0 {
		cfg.CookieSameSite = http.SameSiteLaxMode
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.SafeMethod == nil {
		cfg.SafeMethod = isSafeMethod
	}
	if cfg.Key == nil {
		cfg.Key = GenerateKey()
	}

	s, err := newSigner(cfg.Key)
	if err != nil {
		return nil, err
	}
	return &Protector{
		cfg:       cfg,
		factory:   &tokenFactory{signer: s, now: cfg.Clock},
		validator: &validator{signer: s},
	}, nil
}
