package auth

import (
	"errors"
	"strings"
)

// Role define los roles soportados.
// @Enum owner, vet, admin
type Role string

const (
	RoleOwner Role = "owner"
	RoleVet   Role = "vet"
	RoleAdmin Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole valida el rol en el borde (form). Vacío => owner.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleOwner:
		return RoleOwner, nil
	case RoleVet:
		return RoleVet, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }
