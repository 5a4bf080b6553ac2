package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'owner' CHECK (role IN ('owner', 'vet', 'admin')),
		city          TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id                 BIGSERIAL PRIMARY KEY,
		owner_id           BIGINT NOT NULL REFERENCES users(id),
		name               TEXT NOT NULL,
		species            TEXT NOT NULL,
		breed              TEXT,
		age                INTEGER NOT NULL DEFAULT 0 CHECK (age >= 0),
		gender             TEXT,
		color              TEXT,
		weight_kg          DOUBLE PRECISION,
		city               TEXT,
		address            TEXT,
		image              TEXT,
		is_for_adoption    BOOLEAN NOT NULL DEFAULT FALSE,
		is_for_mating      BOOLEAN NOT NULL DEFAULT FALSE,
		vaccinated         BOOLEAN NOT NULL DEFAULT FALSE,
		dewormed           BOOLEAN NOT NULL DEFAULT FALSE,
		pedigree_certified BOOLEAN NOT NULL DEFAULT FALSE,
		neutered           BOOLEAN NOT NULL DEFAULT FALSE,
		temperament        TEXT,
		health_notes       TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS pets_owner_id_idx ON pets (owner_id)`,
	`CREATE TABLE IF NOT EXISTS adoption_requests (
		id           BIGSERIAL PRIMARY KEY,
		pet_id       BIGINT NOT NULL REFERENCES pets(id),
		requester_id BIGINT NOT NULL REFERENCES users(id),
		message      TEXT,
		status       TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS adoption_requests_requester_id_idx ON adoption_requests (requester_id)`,
	`CREATE TABLE IF NOT EXISTS mating_requests (
		id               BIGSERIAL PRIMARY KEY,
		pet_id           BIGINT NOT NULL REFERENCES pets(id),
		requester_pet_id BIGINT NOT NULL REFERENCES pets(id),
		status           TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS vet_appointments (
		id               BIGSERIAL PRIMARY KEY,
		owner_id         BIGINT NOT NULL REFERENCES users(id),
		pet_id           BIGINT NOT NULL REFERENCES pets(id),
		vet_id           BIGINT NOT NULL REFERENCES users(id),
		appointment_time TIMESTAMPTZ NOT NULL,
		reason           TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS vet_appointments_owner_id_idx ON vet_appointments (owner_id)`,
	`CREATE INDEX IF NOT EXISTS vet_appointments_vet_id_idx ON vet_appointments (vet_id)`,
}

const dropAll = `DROP TABLE IF EXISTS vet_appointments, mating_requests, adoption_requests, pets, users CASCADE`

// Apply crea las tablas que falten. Se puede correr en cada arranque.
func Apply(ctx context.Context, db execer) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}

// Reset borra todas las tablas (y sus datos) y las vuelve a crear.
func Reset(ctx context.Context, db execer) error {
	if _, err := db.ExecContext(ctx, dropAll); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return Apply(ctx, db)
}
