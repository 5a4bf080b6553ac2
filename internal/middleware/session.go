package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"pet-hub/internal/ports/auth"
	"pet-hub/internal/web"
)

type ctxKey string

const principalKey ctxKey = "principal"

// SessionCookie describe la cookie que transporta el token.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (c SessionCookie) name() string {
	if c.Name == "" {
		return "pethub_session"
	}
	return c.Name
}

// Session:
// - Si viene cookie de sesión => Verify() y user loader por id.
// - Token inválido o usuario inexistente => request anónimo (se limpia la cookie).
// - Nunca corta el request; los handlers deciden si exigen auth.
func Session(cookie SessionCookie, verifier auth.SessionVerifier, loader auth.UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookie.name())
			if err != nil || c.Value == "" || verifier == nil || loader == nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), c.Value)
			if err != nil {
				ClearSession(w, cookie)
				next.ServeHTTP(w, r)
				return
			}

			p, err := loader.LoadPrincipal(r.Context(), claims.UserID)
			if err != nil {
				ClearSession(w, cookie)
				next.ServeHTTP(w, r)
				return
			}

			noteLoggedUser(r.Context(), p.UserID)
			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok && p.UserID > 0
}

// WithPrincipal se usa en tests de handlers.
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// RequireAuth redirige a /login (con next) si no hay sesión.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPrincipal(r.Context()); !ok {
			to := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
			web.RedirectWithFlash(w, r, to, web.FlashInfo, "Please log in to access this page.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StartSession escribe la cookie con el token emitido.
func StartSession(w http.ResponseWriter, cookie SessionCookie, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookie.name(),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSession(w http.ResponseWriter, cookie SessionCookie) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookie.name(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
