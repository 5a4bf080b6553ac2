package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-hub/internal/domain/appointments"

	"github.com/jmoiron/sqlx"
)

type AppointmentsRepo struct {
	db *sqlx.DB
}

func NewAppointmentsRepo(db *sqlx.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

type appointmentRow struct {
	ID              int64          `db:"id"`
	OwnerID         int64          `db:"owner_id"`
	PetID           int64          `db:"pet_id"`
	VetID           int64          `db:"vet_id"`
	AppointmentTime time.Time      `db:"appointment_time"`
	Reason          sql.NullString `db:"reason"`
	CreatedAt       time.Time      `db:"created_at"`
}

const appointmentColumns = `id, owner_id, pet_id, vet_id, appointment_time, reason, created_at`

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO vet_appointments (owner_id, pet_id, vet_id, appointment_time, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		a.OwnerID,
		a.PetID,
		a.VetID,
		a.Time,
		nullString(a.Reason),
		a.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, constraintErr(err, appointments.ErrInvalidReference)
	}
	return id, nil
}

func (r *AppointmentsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]appointments.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM vet_appointments WHERE owner_id = $1 ORDER BY id ASC`, ownerID)
}

func (r *AppointmentsRepo) ListByVet(ctx context.Context, vetID int64) ([]appointments.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM vet_appointments WHERE vet_id = $1 ORDER BY id ASC`, vetID)
}

func (r *AppointmentsRepo) ListAll(ctx context.Context) ([]appointments.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM vet_appointments ORDER BY id ASC`)
}

func (r *AppointmentsRepo) list(ctx context.Context, q string, args ...any) ([]appointments.Appointment, error) {
	var rows []appointmentRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}

	out := make([]appointments.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, appointments.Appointment{
			ID:        row.ID,
			OwnerID:   row.OwnerID,
			PetID:     row.PetID,
			VetID:     row.VetID,
			Time:      row.AppointmentTime.UTC(),
			Reason:    row.Reason.String,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return out, nil
}
