package users

import "pet-hub/internal/ports/auth"

// User es una cuenta del sistema (owner, vet o admin).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         auth.Role
	City         string // opcional
}

func (u User) Principal() auth.Principal {
	return auth.Principal{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
