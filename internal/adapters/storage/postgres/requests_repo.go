package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-hub/internal/domain/adoptions"
	"pet-hub/internal/domain/matings"

	"github.com/jmoiron/sqlx"
)

type AdoptionsRepo struct {
	db *sqlx.DB
}

func NewAdoptionsRepo(db *sqlx.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

type adoptionRow struct {
	ID          int64          `db:"id"`
	PetID       int64          `db:"pet_id"`
	RequesterID int64          `db:"requester_id"`
	Message     sql.NullString `db:"message"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (row adoptionRow) toRequest() adoptions.Request {
	return adoptions.Request{
		ID:          row.ID,
		PetID:       row.PetID,
		RequesterID: row.RequesterID,
		Message:     row.Message.String,
		Status:      adoptions.Status(row.Status),
		CreatedAt:   row.CreatedAt.UTC(),
	}
}

const adoptionColumns = `id, pet_id, requester_id, message, status, created_at`

func (r *AdoptionsRepo) Create(ctx context.Context, req adoptions.Request) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO adoption_requests (pet_id, requester_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		req.PetID,
		req.RequesterID,
		nullString(req.Message),
		string(req.Status),
		req.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, constraintErr(err, adoptions.ErrInvalidReference)
	}
	return id, nil
}

func (r *AdoptionsRepo) ListByRequester(ctx context.Context, requesterID int64) ([]adoptions.Request, error) {
	return r.list(ctx, `SELECT `+adoptionColumns+` FROM adoption_requests WHERE requester_id = $1 ORDER BY id ASC`, requesterID)
}

func (r *AdoptionsRepo) ListAll(ctx context.Context) ([]adoptions.Request, error) {
	return r.list(ctx, `SELECT `+adoptionColumns+` FROM adoption_requests ORDER BY id ASC`)
}

func (r *AdoptionsRepo) list(ctx context.Context, q string, args ...any) ([]adoptions.Request, error) {
	var rows []adoptionRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	out := make([]adoptions.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toRequest())
	}
	return out, nil
}

type MatingsRepo struct {
	db *sqlx.DB
}

func NewMatingsRepo(db *sqlx.DB) *MatingsRepo {
	return &MatingsRepo{db: db}
}

type matingRow struct {
	ID             int64     `db:"id"`
	PetID          int64     `db:"pet_id"`
	RequesterPetID int64     `db:"requester_pet_id"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r *MatingsRepo) Create(ctx context.Context, req matings.Request) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO mating_requests (pet_id, requester_pet_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		req.PetID,
		req.RequesterPetID,
		string(req.Status),
		req.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, constraintErr(err, matings.ErrInvalidReference)
	}
	return id, nil
}

func (r *MatingsRepo) ListAll(ctx context.Context) ([]matings.Request, error) {
	var rows []matingRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, pet_id, requester_pet_id, status, created_at
		FROM mating_requests
		ORDER BY id ASC
	`); err != nil {
		return nil, err
	}

	out := make([]matings.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, matings.Request{
			ID:             row.ID,
			PetID:          row.PetID,
			RequesterPetID: row.RequesterPetID,
			Status:         matings.Status(row.Status),
			CreatedAt:      row.CreatedAt.UTC(),
		})
	}
	return out, nil
}
