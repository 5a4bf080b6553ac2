package web

import (
	"net/http"

	"pet-hub/internal/platform/logger"
	"pet-hub/internal/platform/metrics"
	"pet-hub/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Env agrupa lo que comparten los handlers de todos los módulos.
type Env struct {
	Renderer Renderer
	Log      logger.Logger
	Metrics  *metrics.Metrics
}

// ViewUser es la parte pública del usuario de sesión que ve la vista.
type ViewUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (e Env) Logger() logger.Logger {
	if e.Log == nil {
		return logger.Nop()
	}
	return e.Log
}

// Render dibuja la vista; p nil => anónimo.
func (e Env) Render(w http.ResponseWriter, r *http.Request, status int, name string, p *auth.Principal, data any) {
	var user any
	if p != nil && p.UserID > 0 {
		user = &ViewUser{ID: p.UserID, Name: p.Name, Email: p.Email, Role: p.Role.String()}
	}
	Render(w, r, e.Renderer, status, name, user, data)
}

// InternalError loguea el error real y responde genérico.
func (e Env) InternalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e.Logger().Error(msg, map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"path":       r.URL.Path,
		"err":        err,
	})
	http.Error(w, "internal error", http.StatusInternalServerError)
}
