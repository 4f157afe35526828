package usecase

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "lovemypet-backend/internal/auth/domain"
	"lovemypet-backend/internal/geo"
	petdomain "lovemypet-backend/internal/pet/domain"
	petdto "lovemypet-backend/internal/pet/dto"
)

// --- helpers ---

// memPetRepo is an in-memory PetRepository. FindNear reproduces the store's
// contract: only pets within the radius, sorted by increasing geodesic
// distance, insertion order as tie-break.
type memPetRepo struct {
	pets  []petdomain.Pet
	calls int
}

func (m *memPetRepo) Insert(ctx context.Context, pet *petdomain.Pet) error {
	m.calls++
	if pet.ID == "" {
		pet.ID = "pet-" + pet.Name
	}
	if pet.Images == nil {
		pet.Images = []string{}
	}
	m.pets = append(m.pets, *pet)
	return nil
}

func (m *memPetRepo) FindByID(ctx context.Context, id string) (*petdomain.Pet, error) {
	m.calls++
	for i := range m.pets {
		if m.pets[i].ID == id {
			cp := m.pets[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPetRepo) FindAll(ctx context.Context) ([]petdomain.Pet, error) {
	m.calls++
	return append([]petdomain.Pet{}, m.pets...), nil
}

func (m *memPetRepo) FindByOwner(ctx context.Context, ownerID string) ([]petdomain.Pet, error) {
	m.calls++
	out := []petdomain.Pet{}
	for _, p := range m.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPetRepo) FindByCategoryStatus(ctx context.Context, category, status string) ([]petdomain.Pet, error) {
	m.calls++
	out := []petdomain.Pet{}
	for _, p := range m.pets {
		if p.Category == category && p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPetRepo) UpdateByID(ctx context.Context, id string, patch *petdomain.PetUpdate) (*petdomain.Pet, error) {
	m.calls++
	for i := range m.pets {
		if m.pets[i].ID != id {
			continue
		}
		p := &m.pets[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Images != nil {
			p.Images = patch.Images
		}
		if patch.Location != nil {
			p.Location = patch.Location
		}
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memPetRepo) DeleteByID(ctx context.Context, id string) error {
	m.calls++
	for i := range m.pets {
		if m.pets[i].ID == id {
			m.pets = append(m.pets[:i], m.pets[i+1:]...)
			return nil
		}
	}
	return petdomain.ErrPetNotFound
}

func (m *memPetRepo) FindNear(ctx context.Context, center geo.Point, maxMeters float64) ([]petdomain.Pet, error) {
	m.calls++
	type scored struct {
		pet  petdomain.Pet
		dist float64
		ord  int
	}
	var within []scored
	for i, p := range m.pets {
		if p.Location == nil {
			continue
		}
		d := geo.Distance(center, *p.Location)
		if d <= maxMeters {
			within = append(within, scored{pet: p, dist: d, ord: i})
		}
	}
	sort.SliceStable(within, func(i, j int) bool {
		if within[i].dist != within[j].dist {
			return within[i].dist < within[j].dist
		}
		return within[i].ord < within[j].ord
	})
	out := []petdomain.Pet{}
	for _, s := range within {
		out = append(out, s.pet)
	}
	return out, nil
}

// fakeOwnerRepo resolves owners for the join. Only FindByID matters here.
type fakeOwnerRepo struct {
	users map[string]*authdomain.User
}

func (f *fakeOwnerRepo) Create(ctx context.Context, u *authdomain.User) error { return nil }
func (f *fakeOwnerRepo) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	return nil, nil
}
func (f *fakeOwnerRepo) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	return f.users[id], nil
}
func (f *fakeOwnerRepo) UpdateByID(ctx context.Context, id string, patch *authdomain.UserUpdate) (*authdomain.User, error) {
	return nil, nil
}
func (f *fakeOwnerRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func ptr[T any](v T) *T { return &v }

func newNearbyFixture() (*memPetRepo, *fakeOwnerRepo, PetUsecase) {
	petRepo := &memPetRepo{}
	userRepo := &fakeOwnerRepo{users: map[string]*authdomain.User{
		"owner-1": {ID: "owner-1", Name: "Ana", Email: "a@x.com", PhoneNumber: "555-0100", Password: "digest"},
	}}
	return petRepo, userRepo, NewPetUsecase(petRepo, userRepo)
}

func addPet(t *testing.T, repo *memPetRepo, name string, owner string, loc *geo.Point) {
	t.Helper()
	err := repo.Insert(context.Background(), &petdomain.Pet{
		Name: name, Category: petdomain.CategoryDog, Status: "available",
		OwnerID: owner, Location: loc,
	})
	require.NoError(t, err)
}

// --- tests ---

func TestFindNearbyMissingCoordinates(t *testing.T) {
	petRepo, _, uc := newNearbyFixture()

	_, err := uc.FindNearby(context.Background(), &petdto.NearbyQuery{})
	assert.ErrorIs(t, err, petdomain.ErrMissingCoordinates)

	_, err = uc.FindNearby(context.Background(), &petdto.NearbyQuery{Lat: ptr(40.7)})
	assert.ErrorIs(t, err, petdomain.ErrMissingCoordinates)

	_, err = uc.FindNearby(context.Background(), &petdto.NearbyQuery{Lng: ptr(-73.9)})
	assert.ErrorIs(t, err, petdomain.ErrMissingCoordinates)

	assert.Equal(t, 0, petRepo.calls, "validation failures must not touch the store")
}

func TestFindNearbyInvalidDistance(t *testing.T) {
	petRepo, _, uc := newNearbyFixture()

	q := &petdto.NearbyQuery{Lat: ptr(40.7), Lng: ptr(-73.9), MaxDistanceMeters: ptr(-1.0)}
	_, err := uc.FindNearby(context.Background(), q)
	assert.ErrorIs(t, err, petdomain.ErrInvalidDistance)

	q.MaxDistanceMeters = ptr(math.NaN())
	_, err = uc.FindNearby(context.Background(), q)
	assert.ErrorIs(t, err, petdomain.ErrInvalidDistance)

	assert.Equal(t, 0, petRepo.calls)
}

func TestFindNearbyOrderingAndRadius(t *testing.T) {
	petRepo, _, uc := newNearbyFixture()
	center := geo.NewPoint(-73.9, 40.71)

	far := geo.NewPoint(0, 0)
	near := geo.NewPoint(-73.9, 40.7)         // ~1.1 km from center
	nearer := geo.NewPoint(-73.9, 40.705)     // ~0.6 km
	justOutside := geo.NewPoint(-73.9, 40.81) // ~11 km

	addPet(t, petRepo, "rex", "owner-1", &near)
	addPet(t, petRepo, "fido", "owner-1", &far)
	addPet(t, petRepo, "bolt", "owner-1", &nearer)
	addPet(t, petRepo, "luna", "owner-1", &justOutside)

	results, err := uc.FindNearby(context.Background(), &petdto.NearbyQuery{
		Lat: ptr(center.Lat()), Lng: ptr(center.Lng()), MaxDistanceMeters: ptr(10000.0),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "bolt", results[0].Name)
	assert.Equal(t, "rex", results[1].Name)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t,
			geo.Distance(center, *results[i-1].Location),
			geo.Distance(center, *results[i].Location))
	}
}

func TestFindNearbyDefaultRadius(t *testing.T) {
	petRepo, _, uc := newNearbyFixture()
	center := geo.NewPoint(-73.9, 40.7)

	inside := geo.NewPoint(-73.9, 40.71)  // ~1.1 km
	outside := geo.NewPoint(-73.9, 40.76) // ~6.7 km

	addPet(t, petRepo, "rex", "owner-1", &inside)
	addPet(t, petRepo, "fido", "owner-1", &outside)

	results, err := uc.FindNearby(context.Background(), &petdto.NearbyQuery{
		Lat: ptr(center.Lat()), Lng: ptr(center.Lng()),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rex", results[0].Name)
}

func TestFindNearbyOwnerJoin(t *testing.T) {
	petRepo, _, uc := newNearbyFixture()
	loc := geo.NewPoint(-73.9, 40.7)

	addPet(t, petRepo, "rex", "owner-1", &loc)
	addPet(t, petRepo, "ghost", "owner-gone", &loc)

	results, err := uc.FindNearby(context.Background(), &petdto.NearbyQuery{
		Lat: ptr(40.7), Lng: ptr(-73.9),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NotNil(t, results[0].Owner)
	assert.Equal(t, "Ana", results[0].Owner.Name)
	assert.Equal(t, "555-0100", results[0].Owner.PhoneNumber)

	// Orphaned owner reference: the pet stays in the result, owner is null.
	assert.Nil(t, results[1].Owner)
}

func TestFindNearbyEmptyResult(t *testing.T) {
	_, _, uc := newNearbyFixture()

	results, err := uc.FindNearby(context.Background(), &petdto.NearbyQuery{
		Lat: ptr(40.7), Lng: ptr(-73.9),
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindNearbyCenterBounds(t *testing.T) {
	_, _, uc := newNearbyFixture()

	_, err := uc.FindNearby(context.Background(), &petdto.NearbyQuery{
		Lat: ptr(91.0), Lng: ptr(-73.9),
	})
	assert.Error(t, err)
}

func TestCreatePet(t *testing.T) {
	petRepo, _, uc := newNearbyFixture()
	loc := geo.NewPoint(-73.9, 40.7)

	pet, err := uc.Create(context.Background(), &petdto.CreatePetRequest{
		Name: "rex", Category: petdomain.CategoryDog, Status: "available",
		OwnerID: "owner-1", ImageURL: "https://bucket/rex.jpg", Location: &loc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://bucket/rex.jpg"}, pet.Images)

	_, err = uc.Create(context.Background(), &petdto.CreatePetRequest{
		Name: "stray", OwnerID: "owner-gone",
	})
	assert.ErrorIs(t, err, petdomain.ErrOwnerNotFound)
	assert.Len(t, petRepo.pets, 1)
}

func TestUpdatePetAppendsImage(t *testing.T) {
	_, _, uc := newNearbyFixture()

	pet, err := uc.Create(context.Background(), &petdto.CreatePetRequest{
		Name: "rex", OwnerID: "owner-1", ImageURL: "https://bucket/one.jpg",
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), pet.ID, &petdto.UpdatePetRequest{
		Status:   ptr("adopted"),
		ImageURL: ptr("https://bucket/two.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "adopted", updated.Status)
	assert.Equal(t, []string{"https://bucket/one.jpg", "https://bucket/two.jpg"}, updated.Images)
}

func TestGetByOwnerEmpty(t *testing.T) {
	_, _, uc := newNearbyFixture()

	pets, err := uc.GetByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.NotNil(t, pets)
	assert.Empty(t, pets)
}

func TestDeletePetNotFound(t *testing.T) {
	_, _, uc := newNearbyFixture()
	assert.ErrorIs(t, uc.Delete(context.Background(), "nope"), petdomain.ErrPetNotFound)
}
