package pets

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID   map[int64]Pet
	order  []int64
	nextID int64
	owners map[int64]bool
}

func newTestRepo(owners ...int64) *testRepo {
	r := &testRepo{byID: map[int64]Pet{}, owners: map[int64]bool{}}
	for _, o := range owners {
		r.owners[o] = true
	}
	return r
}

func (r *testRepo) Create(_ context.Context, p Pet) (int64, error) {
	if !r.owners[p.OwnerID] {
		return 0, ErrInvalidReference
	}
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return p.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(_ context.Context, ownerID int64) ([]Pet, error) {
	out := []Pet{}
	for _, id := range r.order {
		if r.byID[id].OwnerID == ownerID {
			out = append(out, r.byID[id])
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(_ context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func TestService_Create_OwnerIsSessionUser(t *testing.T) {
	repo := newTestRepo(7)
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), 7, CreateInput{
		Name:          " Rex ",
		Species:       "dog",
		IsForAdoption: true,
		Vaccinated:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, int64(7), p.OwnerID)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, 0, p.Age)
	assert.True(t, p.IsForAdoption)
	assert.False(t, p.IsForMating)
	assert.True(t, p.Vaccinated)
	assert.Empty(t, p.Image)

	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_Create_Validation(t *testing.T) {
	repo := newTestRepo(1)
	svc := NewService(repo)
	tooOld := int64(math.MaxInt32) + 1

	bad := []CreateInput{
		{Name: "", Species: "dog"},
		{Name: "Rex", Species: "  "},
		{Name: "Rex", Species: "dog", Age: -1},
		{Name: "Rex", Species: "dog", Age: int(tooOld)},
		{Name: "Rex", Species: "dog", WeightKg: -3},
	}
	for _, in := range bad {
		_, err := svc.Create(context.Background(), 1, in)
		require.ErrorIs(t, err, ErrInvalidInput)
	}

	_, err := svc.Create(context.Background(), 0, CreateInput{Name: "Rex", Species: "dog"})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, repo.byID)
}

func TestService_Create_UnknownOwner(t *testing.T) {
	svc := NewService(newTestRepo())
	_, err := svc.Create(context.Background(), 99, CreateInput{Name: "Rex", Species: "dog"})
	require.ErrorIs(t, err, ErrInvalidReference)
}

func TestService_Lists(t *testing.T) {
	svc := NewService(newTestRepo(1, 2))
	ctx := context.Background()

	for _, c := range []struct {
		owner int64
		name  string
	}{{1, "Rex"}, {2, "Mia"}, {1, "Toby"}} {
		_, err := svc.Create(ctx, c.owner, CreateInput{Name: c.name, Species: "dog"})
		require.NoError(t, err)
	}

	mine, err := svc.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Rex", mine[0].Name)
	assert.Equal(t, "Toby", mine[1].Name)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.GetByID(ctx, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestParseAgeAndWeight(t *testing.T) {
	n, err := parseAge("")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = parseAge(" 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = parseAge("2147483647")
	require.NoError(t, err)
	assert.Equal(t, 2147483647, n)

	for _, v := range []string{"four", "4.5", "-1", "3000000000"} {
		_, err := parseAge(v)
		require.Error(t, err, v)
	}

	w, err := parseWeight("")
	require.NoError(t, err)
	assert.Zero(t, w)

	w, err = parseWeight("12.5")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, w, 1e-9)

	for _, v := range []string{"heavy", "-2", "NaN", "Inf"} {
		_, err := parseWeight(v)
		require.Error(t, err, v)
	}
}

func TestToResponse_NullableFields(t *testing.T) {
	r := ToResponse(Pet{ID: 1, Name: "Rex"})
	assert.Nil(t, r.Image)
	assert.Nil(t, r.WeightKg)

	r = ToResponse(Pet{ID: 1, Name: "Rex", Image: "rex.png", WeightKg: 8})
	require.NotNil(t, r.Image)
	assert.Equal(t, "rex.png", *r.Image)
	require.NotNil(t, r.WeightKg)
	assert.InDelta(t, 8.0, *r.WeightKg, 1e-9)
}
