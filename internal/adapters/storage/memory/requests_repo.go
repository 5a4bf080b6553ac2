package memory

import (
	"context"

	"pet-hub/internal/domain/adoptions"
	"pet-hub/internal/domain/matings"
)

type adoptionRepo struct {
	st *Store
}

func NewAdoptionRepo(st *Store) adoptions.Repository {
	return &adoptionRepo{st: st}
}

func (r *adoptionRepo) Create(ctx context.Context, req adoptions.Request) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if !r.st.petExists(req.PetID) || !r.st.userExists(req.RequesterID) {
		return 0, adoptions.ErrInvalidReference
	}

	r.st.seq.adoptions++
	req.ID = r.st.seq.adoptions
	r.st.adoptions[req.ID] = req
	return req.ID, nil
}

func (r *adoptionRepo) ListByRequester(ctx context.Context, requesterID int64) ([]adoptions.Request, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.adoptions, func(a adoptions.Request) bool { return a.RequesterID == requesterID }), nil
}

func (r *adoptionRepo) ListAll(ctx context.Context) ([]adoptions.Request, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.adoptions, nil), nil
}

type matingRepo struct {
	st *Store
}

func NewMatingRepo(st *Store) matings.Repository {
	return &matingRepo{st: st}
}

func (r *matingRepo) Create(ctx context.Context, req matings.Request) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if !r.st.petExists(req.PetID) || !r.st.petExists(req.RequesterPetID) {
		return 0, matings.ErrInvalidReference
	}

	r.st.seq.matings++
	req.ID = r.st.seq.matings
	r.st.matings[req.ID] = req
	return req.ID, nil
}

func (r *matingRepo) ListAll(ctx context.Context) ([]matings.Request, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.matings, nil), nil
}
