package adoptions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items  []Request
	pets   map[int64]bool
	nextID int64
}

func (r *testRepo) Create(_ context.Context, req Request) (int64, error) {
	if !r.pets[req.PetID] {
		return 0, ErrInvalidReference
	}
	r.nextID++
	req.ID = r.nextID
	r.items = append(r.items, req)
	return req.ID, nil
}

func (r *testRepo) ListByRequester(_ context.Context, requesterID int64) ([]Request, error) {
	out := []Request{}
	for _, it := range r.items {
		if it.RequesterID == requesterID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(_ context.Context) ([]Request, error) {
	return append([]Request(nil), r.items...), nil
}

func TestService_Create_PendingWithServerTime(t *testing.T) {
	repo := &testRepo{pets: map[int64]bool{3: true}}
	svc := NewService(repo)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	req, err := svc.Create(context.Background(), 5, 3, "  I have a garden  ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), req.ID)
	assert.Equal(t, StatusPending, req.Status)
	assert.Equal(t, fixed, req.CreatedAt)
	assert.Equal(t, "I have a garden", req.Message)
	assert.Equal(t, int64(5), req.RequesterID)
}

func TestService_Create_DuplicatesAllowed(t *testing.T) {
	repo := &testRepo{pets: map[int64]bool{3: true}}
	svc := NewService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), 5, 3, "")
		require.NoError(t, err)
	}
	mine, err := svc.ListByRequester(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	others, err := svc.ListByRequester(context.Background(), 6)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestService_Create_Errors(t *testing.T) {
	repo := &testRepo{pets: map[int64]bool{}}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 5, 42, "")
	require.ErrorIs(t, err, ErrInvalidReference)

	_, err = svc.Create(context.Background(), 0, 42, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("accepted").Valid())
}
