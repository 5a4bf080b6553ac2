package users

import (
	"errors"
	"net/http"
	"strings"

	"pet-hub/internal/middleware"
	"pet-hub/internal/ports/auth"
	"pet-hub/internal/web"

	"github.com/go-chi/chi/v5"
)

// SessionDeps es lo que necesitan login/logout para manejar la cookie.
type SessionDeps struct {
	Issuer  auth.SessionIssuer
	Cookie  middleware.SessionCookie
	Limiter *middleware.RateLimiter
}

func RegisterRoutes(r chi.Router, svc *Service, sess SessionDeps, env web.Env) {
	r.Get("/register", registerFormHandler(env))
	r.Post("/register", registerHandler(svc, env))

	r.Get("/login", loginFormHandler(env))
	r.Post("/login", loginHandler(svc, sess, env))

	r.With(middleware.RequireAuth).Get("/logout", logoutHandler(sess, env))
}

type registerView struct {
	Roles []auth.Role `json:"roles"`
}

type loginView struct {
	Next string `json:"next,omitempty"`
}

// UserResponse es la vista pública de un usuario (sin password_hash).
type UserResponse struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
	City  string    `json:"city,omitempty"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		City:  u.City,
	}
}

func ToResponses(items []User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, ToResponse(u))
	}
	return out
}

func registerFormHandler(env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env.Render(w, r, http.StatusOK, "auth_register", nil, registerView{
			Roles: []auth.Role{auth.RoleOwner, auth.RoleVet, auth.RoleAdmin},
		})
	}
}

// registerHandler godoc
// @Summary  Register an account
// @Tags     auth
// @Accept   x-www-form-urlencoded
// @Param    name     formData string true  "Display name"
// @Param    email    formData string true  "Email"
// @Param    password formData string true  "Password (8+ chars, upper, lower, digit, symbol)"
// @Param    role     formData string false "owner, vet or admin"
// @Param    city     formData string false "City"
// @Success  303
// @Router   /register [post]
func registerHandler(svc *Service, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(w, r, web.MaxFormBytes); err != nil {
			web.RedirectWithFlash(w, r, "/register", web.FlashDanger, "Invalid form submission")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:     r.PostFormValue("name"),
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
			Role:     r.PostFormValue("role"),
			City:     r.PostFormValue("city"),
		})
		if err != nil {
			msg, known := registerErrorMessage(err)
			if !known {
				env.Metrics.Registration("error")
				env.InternalError(w, r, "register failed", err)
				return
			}
			env.Metrics.Registration("rejected")
			web.RedirectWithFlash(w, r, "/register", web.FlashDanger, msg)
			return
		}

		env.Metrics.Registration("ok")
		env.Logger().Info("user registered", map[string]any{
			"user_id": u.ID,
			"role":    u.Role.String(),
		})
		web.RedirectWithFlash(w, r, "/login", web.FlashSuccess, "Registration successful. Please login.")
	}
}

func registerErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return "Email already registered", true
	case errors.Is(err, ErrWeakPassword):
		detail := strings.TrimPrefix(err.Error(), ErrWeakPassword.Error()+": ")
		return "Password " + detail + ".", true
	case errors.Is(err, auth.ErrUnknownRole):
		return "Invalid role", true
	case errors.Is(err, ErrInvalidInput):
		return "Name, email and password are required", true
	default:
		return "", false
	}
}

func loginFormHandler(env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env.Render(w, r, http.StatusOK, "auth_login", nil, loginView{Next: safeNext(r.URL.Query().Get("next"))})
	}
}

// loginHandler godoc
// @Summary  Log in
// @Tags     auth
// @Accept   x-www-form-urlencoded
// @Param    email    formData string true "Email"
// @Param    password formData string true "Password"
// @Success  303
// @Failure  429
// @Router   /login [post]
func loginHandler(svc *Service, sess SessionDeps, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next := safeNext(r.URL.Query().Get("next"))

		if !sess.Limiter.Allow(middleware.ClientKey(r)) {
			env.Metrics.Login("throttled")
			web.AddFlash(r, web.FlashDanger, "Too many login attempts. Try again later.")
			env.Render(w, r, http.StatusTooManyRequests, "auth_login", nil, loginView{Next: next})
			return
		}

		if err := web.ParseForm(w, r, web.MaxFormBytes); err != nil {
			web.AddFlash(r, web.FlashDanger, "Invalid form submission")
			env.Render(w, r, http.StatusBadRequest, "auth_login", nil, loginView{Next: next})
			return
		}
		if v := safeNext(r.PostFormValue("next")); v != "" {
			next = v
		}

		u, err := svc.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
		if err != nil {
			if !errors.Is(err, ErrInvalidCredentials) {
				env.Metrics.Login("error")
				env.InternalError(w, r, "login failed", err)
				return
			}
			env.Metrics.Login("invalid")
			web.AddFlash(r, web.FlashDanger, "Invalid email or password")
			env.Render(w, r, http.StatusOK, "auth_login", nil, loginView{Next: next})
			return
		}

		token, exp, err := sess.Issuer.Issue(r.Context(), u.ID)
		if err != nil {
			env.Metrics.Login("error")
			env.InternalError(w, r, "issue session failed", err)
			return
		}
		middleware.StartSession(w, sess.Cookie, token, exp)

		env.Metrics.Login("ok")
		if next == "" {
			next = "/dashboard"
		}
		web.RedirectWithFlash(w, r, next, web.FlashSuccess, "Logged in successfully")
	}
}

func logoutHandler(sess SessionDeps, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware.ClearSession(w, sess.Cookie)
		web.RedirectWithFlash(w, r, "/login", web.FlashInfo, "Logged out")
	}
}

// safeNext solo acepta paths locales (evita open redirect).
func safeNext(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") || strings.HasPrefix(v, "/\\") {
		return ""
	}
	return v
}
