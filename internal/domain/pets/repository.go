package pets

import "context"

// Repository: Create devuelve el id asignado.
// OwnerID inexistente => ErrInvalidReference; id inexistente => ErrNotFound.
type Repository interface {
	Create(ctx context.Context, p Pet) (int64, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)
}
