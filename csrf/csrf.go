package csrf

import (
	"context"
	"net/http"
)

// Methods that do not require double-submit validation
var safeMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

func isSafeMethod(method string) bool {
	return safeMethods[method]
}

// Protect wraps the given next http.Handler and enforces CSRF protection
// with signed double-submit tokens.
//
// Behavior:
//   - For safe methods (per Config.SafeMethod): issues a fresh signed token
//     on first visit, or verifies the existing cookie token and re-signs its
//     raw value, then calls next. The token for the current response is
//     injected into the request context.
//   - For unsafe methods: requires the cookie token and a client-provided
//     copy (header, or form field fallback), verifies both signatures,
//     compares the raw values in constant time, and only then calls next —
//     re-signing the validated raw value into the response cookie.
//
// Every validation failure collapses into a single opaque 401 response so
// the outcome never reveals whether a token was missing, malformed or
// mismatched. Errors from next propagate untouched.
//
// Params:
// - next: downstream handler to be executed after CSRF checks pass.
//
// Returns:
// - An http.Handler that performs the CSRF logic before delegating to next.
func (p *Protector) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.cfg.SafeMethod(r.Method) {
			p.serveSafe(w, r, next)
			return
		}
		p.serveUnsafe(w, r, next)
	})
}

// serveSafe handles methods exempt from double-submit validation. They
// still participate in the token protocol: first visits get a fresh
// token, returning visits get their raw value re-signed. A cookie that
// fails to verify is rejected outright, same as on the unsafe path.
func (p *Protector) serveSafe(w http.ResponseWriter, r *http.Request, next http.Handler) {
	cookie, err := r.Cookie(p.cfg.CookieName)
	if err != nil {
		// first visit
		token, err := p.factory.newToken()
		if err != nil {
			http.Error(w, "failed to issue CSRF token", http.StatusInternalServerError)
			return
		}
		p.forward(w, r, next, token)
		return
	}

	raw, ok := p.validator.extractRaw(cookie.Value)
	if !ok {
		p.reject(w)
		return
	}
	p.forward(w, r, next, p.factory.signRaw(raw))
}

// serveUnsafe performs the full double-submit check before anything
// reaches the downstream handler.
func (p *Protector) serveUnsafe(w http.ResponseWriter, r *http.Request, next http.Handler) {
	cookie, err := r.Cookie(p.cfg.CookieName)
	if err != nil {
		p.reject(w)
		return
	}

	clientToken := extractClientToken(r, p.cfg.HeaderName, p.cfg.FormField)
	if clientToken == "" {
		p.reject(w)
		return
	}

	raw, ok := p.validator.tokensMatch(cookie.Value, clientToken)
	if !ok {
		p.reject(w)
		return
	}
	p.forward(w, r, next, p.factory.signRaw(raw))
}

// forward stamps the response cookie with token, exposes the token to
// downstream handlers via the request context, and invokes next. The
// Set-Cookie header is written before next runs because headers cannot
// be added once the downstream handler starts writing the body.
func (p *Protector) forward(w http.ResponseWriter, r *http.Request, next http.Handler, token string) {
	cfg := p.cfg
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     cfg.CookiePath,
		Domain:   cfg.CookieDomain,
		MaxAge:   cfg.CookieMaxAge,
		SameSite: cfg.CookieSameSite,
		Secure:   cfg.CookieSecure,
		HttpOnly: cfg.CookieHTTPOnly,
	})
	next.ServeHTTP(w, r.WithContext(contextWithToken(r.Context(), token)))
}

// reject terminates the request without invoking downstream and without
// touching the cookie. All failures share one message and status.
func (p *Protector) reject(w http.ResponseWriter) {
	http.Error(w, "CSRF token validation failed", http.StatusUnauthorized)
}

// TokenFromContext returns the CSRF token stored in ctx, if present.
// This is the signed token stamped into the current response cookie, so
// it is the value a client should echo in the header on its next
// unsafe request.
//
// Params:
// - ctx: context potentially containing a token set by the middleware.
//
// Returns:
// - token (string) and a boolean indicating whether a token was found.
func TokenFromContext(ctx context.Context) (string, bool) {
	return tokenFromContext(ctx)
}

// TokenHandler returns an HTTP handler that writes the current CSRF token.
// This is useful for SPAs to fetch the token and attach it to subsequent requests.
//
// Returns:
// - http.Handler that responds with the token in the response body (text/plain).
func (p *Protector) TokenHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok, ok := TokenFromContext(r.Context()); ok {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(tok))
			return
		}
		http.Error(w, "no token", http.StatusInternalServerError)
	})
}
