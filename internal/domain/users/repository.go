package users

import "context"

// Repository: Create devuelve el id asignado por el store.
// Email duplicado => ErrEmailTaken; id/email inexistente => ErrNotFound.
type Repository interface {
	Create(ctx context.Context, u User) (int64, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
}
