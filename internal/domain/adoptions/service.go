package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
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

// Create no valida que la mascota esté en adopción ni evita duplicados.
func (s *Service) Create(ctx context.Context, requesterID, petID int64, message string) (Request, error) {
	if requesterID <= 0 || petID <= 0 {
		return Request{}, ErrInvalidInput
	}

	req := Request{
		PetID:       petID,
		RequesterID: requesterID,
		Message:     strings.TrimSpace(message),
		Status:      StatusPending,
		CreatedAt:   s.now().UTC(),
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return Request{}, err
	}
	req.ID = id
	return req, nil
}

func (s *Service) ListByRequester(ctx context.Context, requesterID int64) ([]Request, error) {
	return s.repo.ListByRequester(ctx, requesterID)
}

func (s *Service) ListAll(ctx context.Context) ([]Request, error) {
	return s.repo.ListAll(ctx)
}
