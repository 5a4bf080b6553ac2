package memory

import (
	"context"

	"pet-hub/internal/domain/users"
)

type userRepo struct {
	st *Store
}

func NewUserRepo(st *Store) users.Repository {
	return &userRepo{st: st}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	// UNIQUE(email), case-sensitive como en postgres
	if _, taken := r.st.emails[u.Email]; taken {
		return 0, users.ErrEmailTaken
	}

	r.st.seq.users++
	u.ID = r.st.seq.users
	r.st.users[u.ID] = u
	r.st.emails[u.Email] = u.ID
	return u.ID, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	u, ok := r.st.users[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	id, ok := r.st.emails[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.st.users[id], nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return sortedValues(r.st.users, nil), nil
}
