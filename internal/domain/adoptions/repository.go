package adoptions

import "context"

// Repository es append-only.
// PetID o RequesterID inexistentes => ErrInvalidReference.
type Repository interface {
	Create(ctx context.Context, req Request) (int64, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]Request, error)
	ListAll(ctx context.Context) ([]Request, error)
}
