package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-hub/internal/domain/pets"

	"github.com/jmoiron/sqlx"
)

type PetsRepo struct {
	db *sqlx.DB
}

func NewPetsRepo(db *sqlx.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

type petRow struct {
	ID                int64           `db:"id"`
	OwnerID           int64           `db:"owner_id"`
	Name              string          `db:"name"`
	Species           string          `db:"species"`
	Breed             sql.NullString  `db:"breed"`
	Age               int             `db:"age"`
	Gender            sql.NullString  `db:"gender"`
	Color             sql.NullString  `db:"color"`
	WeightKg          sql.NullFloat64 `db:"weight_kg"`
	City              sql.NullString  `db:"city"`
	Address           sql.NullString  `db:"address"`
	Image             sql.NullString  `db:"image"`
	IsForAdoption     bool            `db:"is_for_adoption"`
	IsForMating       bool            `db:"is_for_mating"`
	Vaccinated        bool            `db:"vaccinated"`
	Dewormed          bool            `db:"dewormed"`
	PedigreeCertified bool            `db:"pedigree_certified"`
	Neutered          bool            `db:"neutered"`
	Temperament       sql.NullString  `db:"temperament"`
	HealthNotes       sql.NullString  `db:"health_notes"`
}

func (row petRow) toPet() pets.Pet {
	return pets.Pet{
		ID:                row.ID,
		OwnerID:           row.OwnerID,
		Name:              row.Name,
		Species:           row.Species,
		Breed:             row.Breed.String,
		Age:               row.Age,
		Gender:            row.Gender.String,
		Color:             row.Color.String,
		WeightKg:          row.WeightKg.Float64,
		City:              row.City.String,
		Address:           row.Address.String,
		Image:             row.Image.String,
		IsForAdoption:     row.IsForAdoption,
		IsForMating:       row.IsForMating,
		Vaccinated:        row.Vaccinated,
		Dewormed:          row.Dewormed,
		PedigreeCertified: row.PedigreeCertified,
		Neutered:          row.Neutered,
		Temperament:       row.Temperament.String,
		HealthNotes:       row.HealthNotes.String,
	}
}

const petColumns = `
	id, owner_id, name, species, breed, age, gender, color, weight_kg,
	city, address, image,
	is_for_adoption, is_for_mating, vaccinated, dewormed, pedigree_certified, neutered,
	temperament, health_notes`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	// weight 0 => NULL
	weight := sql.NullFloat64{Float64: p.WeightKg, Valid: p.WeightKg > 0}

	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO pets (
			owner_id, name, species, breed, age, gender, color, weight_kg,
			city, address, image,
			is_for_adoption, is_for_mating, vaccinated, dewormed, pedigree_certified, neutered,
			temperament, health_notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		RETURNING id
	`,
		p.OwnerID,
		p.Name,
		p.Species,
		nullString(p.Breed),
		p.Age,
		nullString(p.Gender),
		nullString(p.Color),
		weight,
		nullString(p.City),
		nullString(p.Address),
		nullString(p.Image),
		p.IsForAdoption,
		p.IsForMating,
		p.Vaccinated,
		p.Dewormed,
		p.PedigreeCertified,
		p.Neutered,
		nullString(p.Temperament),
		nullString(p.HealthNotes),
	).Scan(&id)
	if err != nil {
		return 0, constraintErr(err, pets.ErrInvalidReference)
	}
	return id, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var row petRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return row.toPet(), nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.list(ctx, `SELECT `+petColumns+` FROM pets WHERE owner_id = $1 ORDER BY id ASC`, ownerID)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `SELECT `+petColumns+` FROM pets ORDER BY id ASC`)
}

func (r *PetsRepo) list(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toPet())
	}
	return out, nil
}
