package memory

import (
	"context"

	"pet-hub/internal/domain/pets"
)

type petRepo struct {
	st *Store
}

func NewPetRepo(st *Store) pets.Repository {
	return &petRepo{st: st}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if !r.st.userExists(p.OwnerID) {
		return 0, pets.ErrInvalidReference
	}

	r.st.seq.pets++
	p.ID = r.st.seq.pets
	r.st.pets[p.ID] = p
	return p.ID, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	p, ok := r.st.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.pets, func(p pets.Pet) bool { return p.OwnerID == ownerID }), nil
}

func (r *petRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.pets, nil), nil
}
