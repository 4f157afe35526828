package usecase

import (
	"context"

	petdomain "lovemypet-backend/internal/pet/domain"
	petdto "lovemypet-backend/internal/pet/dto"
)

type PetUsecase interface {
	Create(ctx context.Context, req *petdto.CreatePetRequest) (*petdomain.Pet, error)
	GetByID(ctx context.Context, id string) (*petdomain.Pet, error)
	GetAll(ctx context.Context) ([]petdomain.Pet, error)
	GetByOwner(ctx context.Context, ownerID string) ([]petdomain.Pet, error)
	GetByCategory(ctx context.Context, category, status string) ([]petdomain.Pet, error)
	Update(ctx context.Context, id string, req *petdto.UpdatePetRequest) (*petdomain.Pet, error)
	Delete(ctx context.Context, id string) error
	FindNearby(ctx context.Context, q *petdto.NearbyQuery) ([]petdomain.PetWithOwner, error)
}
