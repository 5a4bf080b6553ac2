package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-hub/internal/domain/users"
	"pet-hub/internal/ports/auth"

	"github.com/jmoiron/sqlx"
)

type UsersRepo struct {
	db *sqlx.DB
}

func NewUsersRepo(db *sqlx.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

type userRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	City         sql.NullString `db:"city"`
}

func (row userRow) toUser() users.User {
	return users.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         auth.Role(row.Role),
		City:         row.City.String,
	}
}

const userColumns = `id, name, email, password_hash, role, city`

func (r *UsersRepo) Create(ctx context.Context, u users.User) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO users (name, email, password_hash, role, city)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role.String(),
		nullString(u.City),
	).Scan(&id)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return 0, users.ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UsersRepo) getOne(ctx context.Context, q string, arg any) (users.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, q, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return row.toUser(), nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+userColumns+` FROM users ORDER BY id ASC`); err != nil {
		return nil, err
	}

	out := make([]users.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toUser())
	}
	return out, nil
}
