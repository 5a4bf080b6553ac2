package appointments

import "context"

// Repository: owner, pet o vet inexistentes => ErrInvalidReference.
type Repository interface {
	Create(ctx context.Context, a Appointment) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Appointment, error)
	ListByVet(ctx context.Context, vetID int64) ([]Appointment, error)
	ListAll(ctx context.Context) ([]Appointment, error)
}
