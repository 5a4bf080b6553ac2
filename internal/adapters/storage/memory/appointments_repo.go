package memory

import (
	"context"

	"pet-hub/internal/domain/appointments"
)

type appointmentRepo struct {
	st *Store
}

func NewAppointmentRepo(st *Store) appointments.Repository {
	return &appointmentRepo{st: st}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if !r.st.userExists(a.OwnerID) || !r.st.userExists(a.VetID) || !r.st.petExists(a.PetID) {
		return 0, appointments.ErrInvalidReference
	}

	r.st.seq.appointments++
	a.ID = r.st.seq.appointments
	r.st.appointments[a.ID] = a
	return a.ID, nil
}

func (r *appointmentRepo) ListByOwner(ctx context.Context, ownerID int64) ([]appointments.Appointment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.appointments, func(a appointments.Appointment) bool { return a.OwnerID == ownerID }), nil
}

func (r *appointmentRepo) ListByVet(ctx context.Context, vetID int64) ([]appointments.Appointment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.appointments, func(a appointments.Appointment) bool { return a.VetID == vetID }), nil
}

func (r *appointmentRepo) ListAll(ctx context.Context) ([]appointments.Appointment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.appointments, nil), nil
}
