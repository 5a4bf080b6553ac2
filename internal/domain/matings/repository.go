package matings

import "context"

// Repository es append-only. Cualquier pet inexistente => ErrInvalidReference.
type Repository interface {
	Create(ctx context.Context, req Request) (int64, error)
	ListAll(ctx context.Context) ([]Request, error)
}
