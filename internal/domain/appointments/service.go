package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-hub/internal/ports/auth"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidTime      = errors.New("appointment time must be YYYY-MM-DD HH:MM")
	ErrInvalidReference = errors.New("referenced pet or user does not exist")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ParseTime interpreta el formato del formulario en UTC.
func ParseTime(v string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(v), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, v)
	}
	return t, nil
}

type BookInput struct {
	PetID  int64
	VetID  int64
	Time   string
	Reason string
}

// Book no valida que VetID tenga rol vet ni detecta turnos superpuestos.
func (s *Service) Book(ctx context.Context, ownerID int64, in BookInput) (Appointment, error) {
	if ownerID <= 0 || in.PetID <= 0 || in.VetID <= 0 {
		return Appointment{}, ErrInvalidInput
	}

	at, err := ParseTime(in.Time)
	if err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		OwnerID:   ownerID,
		PetID:     in.PetID,
		VetID:     in.VetID,
		Time:      at,
		Reason:    strings.TrimSpace(in.Reason),
		CreatedAt: s.now().UTC(),
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return Appointment{}, err
	}
	a.ID = id
	return a, nil
}

// ListFor: un vet ve los turnos asignados; el resto, los propios.
func (s *Service) ListFor(ctx context.Context, p auth.Principal) ([]Appointment, error) {
	if p.IsVet() {
		return s.repo.ListByVet(ctx, p.UserID)
	}
	return s.repo.ListByOwner(ctx, p.UserID)
}

func (s *Service) ListAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.ListAll(ctx)
}
