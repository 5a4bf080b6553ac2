package pets

import (
	"context"
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")

	// ErrInvalidReference: el store no encontró una fila referenciada (FK).
	ErrInvalidReference = errors.New("referenced row does not exist")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string
	Species  string
	Breed    string
	Age      int
	Gender   string
	Color    string
	WeightKg float64
	City     string
	Address  string
	Image    string

	IsForAdoption     bool
	IsForMating       bool
	Vaccinated        bool
	Dewormed          bool
	PedigreeCertified bool
	Neutered          bool

	Temperament string
	HealthNotes string
}

// Create ignora cualquier owner que venga del cliente: ownerID es el de la sesión.
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (Pet, error) {
	if ownerID <= 0 {
		return Pet{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	if name == "" || species == "" {
		return Pet{}, ErrInvalidInput
	}
	// age es INTEGER en Postgres
	if in.Age < 0 || in.Age > math.MaxInt32 || in.WeightKg < 0 {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		OwnerID:           ownerID,
		Name:              name,
		Species:           species,
		Breed:             strings.TrimSpace(in.Breed),
		Age:               in.Age,
		Gender:            strings.TrimSpace(in.Gender),
		Color:             strings.TrimSpace(in.Color),
		WeightKg:          in.WeightKg,
		City:              strings.TrimSpace(in.City),
		Address:           strings.TrimSpace(in.Address),
		Image:             in.Image,
		IsForAdoption:     in.IsForAdoption,
		IsForMating:       in.IsForMating,
		Vaccinated:        in.Vaccinated,
		Dewormed:          in.Dewormed,
		PedigreeCertified: in.PedigreeCertified,
		Neutered:          in.Neutered,
		Temperament:       strings.TrimSpace(in.Temperament),
		HealthNotes:       strings.TrimSpace(in.HealthNotes),
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAll(ctx)
}
