package matings

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidReference = errors.New("referenced pet does not exist")
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

// Create no verifica dueño, flag is_for_mating ni duplicados.
func (s *Service) Create(ctx context.Context, petID, requesterPetID int64) (Request, error) {
	if petID <= 0 || requesterPetID <= 0 {
		return Request{}, ErrInvalidInput
	}

	req := Request{
		PetID:          petID,
		RequesterPetID: requesterPetID,
		Status:         StatusPending,
		CreatedAt:      s.now().UTC(),
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return Request{}, err
	}
	req.ID = id
	return req, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Request, error) {
	return s.repo.ListAll(ctx)
}
