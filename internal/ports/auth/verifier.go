package auth

import (
	"context"
	"time"
)

// SessionVerifier verifica un token de sesión y devuelve claims o error.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// SessionIssuer emite el token que se guarda en la cookie de sesión.
type SessionIssuer interface {
	Issue(ctx context.Context, userID int64) (token string, expiresAt time.Time, err error)
}

// UserLoader resuelve el principal a partir del id guardado en la sesión.
// Un usuario inexistente devuelve error y el request sigue como anónimo.
type UserLoader interface {
	LoadPrincipal(ctx context.Context, userID int64) (Principal, error)
}
