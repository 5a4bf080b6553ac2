package middleware

import (
	"context"
	"net/http"
	"time"

	"pet-hub/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const logUserKey ctxKey = "log_user"

// logUser lo llena Session; RequestLogger lo lee al terminar el request.
type logUser struct {
	id int64
}

func noteLoggedUser(ctx context.Context, id int64) {
	if u, ok := ctx.Value(logUserKey).(*logUser); ok {
		u.id = id
	}
}

// RequestLogger loguea cada request con el id que pone chi/middleware.RequestID.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			user := &logUser{}
			r = r.WithContext(context.WithValue(r.Context(), logUserKey, user))

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if user.id > 0 {
				fields["user_id"] = user.id
			}

			switch {
			case status >= 500:
				log.Error("request", fields)
			case status >= 400:
				log.Warn("request", fields)
			default:
				log.Debug("request", fields)
			}
		})
	}
}
