package repository

import (
	"context"

	"lovemypet-backend/internal/geo"
	petdomain "lovemypet-backend/internal/pet/domain"
)

// PetRepository is the persistence contract for pet records. Find methods
// return (nil, nil) for a missing single record and an empty slice for an
// empty listing.
type PetRepository interface {
	Insert(ctx context.Context, pet *petdomain.Pet) error
	FindByID(ctx context.Context, id string) (*petdomain.Pet, error)
	FindAll(ctx context.Context) ([]petdomain.Pet, error)
	FindByOwner(ctx context.Context, ownerID string) ([]petdomain.Pet, error)
	FindByCategoryStatus(ctx context.Context, category, status string) ([]petdomain.Pet, error)
	UpdateByID(ctx context.Context, id string, patch *petdomain.PetUpdate) (*petdomain.Pet, error)
	DeleteByID(ctx context.Context, id string) error
	// FindNear returns pets within maxMeters of center, sorted by increasing
	// geodesic distance (the store's 2dsphere index ordering).
	FindNear(ctx context.Context, center geo.Point, maxMeters float64) ([]petdomain.Pet, error)
}
