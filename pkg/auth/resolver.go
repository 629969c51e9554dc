package auth

import (
	"net/http"
	"strings"
)

// CookieName is where the browser client keeps its session token.
const CookieName = "auth-token"

// Strategy resolves one credential source to an identity. Returning ok=false
// falls through to the next strategy in order.
type Strategy func(r *http.Request) (AuthUser, bool)

// CookieStrategy reads the session cookie set at login.
func CookieStrategy(codec *TokenCodec, name string) Strategy {
	return func(r *http.Request) (AuthUser, bool) {
		ck, err := r.Cookie(name)
		if err != nil || ck.Value == "" {
			return AuthUser{}, false
		}
		return codec.Verify(ck.Value)
	}
}

// BearerStrategy reads the legacy Authorization header scheme.
func BearerStrategy(codec *TokenCodec) Strategy {
	return func(r *http.Request) (AuthUser, bool) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			return AuthUser{}, false
		}
		return codec.Verify(strings.TrimPrefix(h, "Bearer "))
	}
}

// Resolver tries each credential source in order until one yields an
// identity. All sources terminate in the same AuthUser shape.
type Resolver struct {
	strategies []Strategy
}

func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

func (rv *Resolver) Resolve(r *http.Request) (AuthUser, bool) {
	for _, s := range rv.strategies {
		if u, ok := s(r); ok {
			return u, true
		}
	}
	return AuthUser{}, false
}
