package auth

import "time"

// Claims representa la información extraída del token de sesión.
type Claims struct {
	UserID    int64
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal es el usuario autenticado del request (resuelto por el user loader).
type Principal struct {
	UserID int64
	Name   string
	Email  string
	Role   Role
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
func (p Principal) IsVet() bool   { return p.Role == RoleVet }
