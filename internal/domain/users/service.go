package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pet-hub/internal/ports/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("weak password")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

func NewService(repo Repository, hasher auth.PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	City     string
}

// Register valida en orden: campos requeridos, email existente, fuerza de password, rol.
// Ningún error deja filas escritas.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, ErrEmailTaken
	case !errors.Is(err, ErrNotFound):
		return User{}, err
	}

	if err := CheckPasswordStrength(in.Password); err != nil {
		return User{}, err
	}

	role, err := auth.ParseRole(in.Role)
	if err != nil {
		return User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return s.create(ctx, name, email, in.Password, role, strings.TrimSpace(in.City))
}

func (s *Service) create(ctx context.Context, name, email, password string, role auth.Role, city string) (User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	u := User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		City:         city,
	}

	// El UNIQUE del store cubre el race check-then-insert (devuelve ErrEmailTaken).
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}

// Authenticate no distingue email desconocido de password incorrecto.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// mismo costo de bcrypt que un usuario real
			s.hasher.Verify(password, s.dummy())
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// fallbackDummyHash es un digest bcrypt válido (cost 10) por si Hash falla.
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash = fallbackDummyHash
		if h, err := s.hasher.Hash("pet-hub-timing-dummy"); err == nil && h != "" {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// LoadPrincipal implementa auth.UserLoader.
func (s *Service) LoadPrincipal(ctx context.Context, userID int64) (auth.Principal, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return auth.Principal{}, err
	}
	return u.Principal(), nil
}

// SeedAccount es una cuenta por defecto (admin, vet).
type SeedAccount struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// SeedDefaults inserta cada cuenta solo si su email no existe. Idempotente.
// Las passwords sembradas no pasan por la política de fuerza.
func (s *Service) SeedDefaults(ctx context.Context, accounts []SeedAccount) (int, error) {
	created := 0
	for _, a := range accounts {
		email := strings.TrimSpace(a.Email)
		if email == "" || a.Password == "" {
			return created, ErrInvalidInput
		}

		_, err := s.repo.GetByEmail(ctx, email)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return created, err
		}

		role, err := auth.ParseRole(a.Role)
		if err != nil {
			return created, fmt.Errorf("%w: seed %s: %w", ErrInvalidInput, email, err)
		}

		name := strings.TrimSpace(a.Name)
		if name == "" {
			name = email
		}

		if _, err := s.create(ctx, name, email, a.Password, role, ""); err != nil {
			if errors.Is(err, ErrEmailTaken) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}
