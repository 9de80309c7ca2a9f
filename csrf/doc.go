// Package csrf provides CSRF protection for Go net/http servers using a
// signed double-submit cookie pattern.
//
// # How it works
//
// Tokens are three hyphen-joined segments: a hex-encoded random raw
// value, a millisecond nonce, and the hex-encoded HMAC-SHA256 signature
// of raw-nonce under a server-held key. The raw value is what actually
// identifies a client's token; the nonce makes every signed copy unique
// on the wire.
//
//   - Safe methods (GET, HEAD, OPTIONS, TRACE by default): first visits
//     receive a freshly minted signed token in the cookie. Returning
//     visits have their cookie token verified; its raw value is then
//     re-signed with a new nonce into the response cookie. Either way
//     the current token is injected into the request context so handlers
//     can read it via TokenFromContext.
//   - Unsafe methods (everything else): the request must carry the token
//     in the cookie AND echo a token in the header (or a form field as
//     fallback). Both must verify against the signing key and their raw
//     values must match in constant time. On success the validated raw
//     value is re-signed into the response cookie.
//
// Re-signing on every response means the signed wire value is never
// stable even though the underlying raw token is, which blunts
// BREACH-style compression-length oracles. All validation failures
// produce the same opaque 401 response.
//
// # Configuration
//
// All behavior is driven by Config. Key fields include:
//   - Key (see GenerateKey and KeyFromBytes; nil generates a per-process key)
//   - CookieName (default: "csrf-token") and the usual cookie attributes
//   - HeaderName (default: "X-Csrf-Token")
//   - FormField (default: "csrf_token")
//   - Clock (nonce source, default time.Now) and SafeMethod (safety predicate)
//
// Typical usage
//
//	p, err := csrf.New(csrf.Config{Key: key})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Protect an http.Handler (router, mux, etc.)
//	protected := p.Protect(appMux)
//	http.ListenAndServe(":8080", protected)
//
// In handlers, you can read the token from context for rendering or APIs:
//
//	if tok, ok := csrf.TokenFromContext(r.Context()); ok {
//	    // use tok in templates or return it from an endpoint
//	}
//
// For SPAs, expose a small endpoint that returns the current token:
//
//	r.Get("/csrf-token", func(w http.ResponseWriter, r *http.Request) {
//	    p.TokenHandler().ServeHTTP(w, r)
//	})
package csrf
