package usecase

import (
	"context"
	"math"

	"lovemypet-backend/internal/apperr"
	authdomain "lovemypet-backend/internal/auth/domain"
	authrepo "lovemypet-backend/internal/auth/repository"
	"lovemypet-backend/internal/geo"
	petdomain "lovemypet-backend/internal/pet/domain"
	petdto "lovemypet-backend/internal/pet/dto"
	"lovemypet-backend/internal/pet/repository"
)

// DefaultMaxDistanceMeters bounds a nearby search when the caller does not
// ask for a radius.
const DefaultMaxDistanceMeters = 5000

// petUsecase implements PetUsecase interface
type petUsecase struct {
	petRepo  repository.PetRepository
	userRepo authrepo.UserRepository
}

// NewPetUsecase creates a new instance of petUsecase
func NewPetUsecase(petRepo repository.PetRepository, userRepo authrepo.UserRepository) PetUsecase {
	return &petUsecase{
		petRepo:  petRepo,
		userRepo: userRepo,
	}
}

func (u *petUsecase) Create(ctx context.Context, req *petdto.CreatePetRequest) (*petdomain.Pet, error) {
	// The owner must resolve at creation time. After that the reference is
	// not maintained: deleting the owner later orphans the pet.
	owner, err := u.userRepo.FindByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, petdomain.ErrOwnerNotFound
	}

	if req.Location != nil {
		if err := req.Location.Validate(); err != nil {
			return nil, apperr.Validation("location", err.Error())
		}
	}

	pet := &petdomain.Pet{
		Name:        req.Name,
		Breed:       req.Breed,
		Status:      req.Status,
		Category:    req.Category,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		Location:    req.Location,
	}
	if req.ImageURL != "" {
		pet.Images = []string{req.ImageURL}
	}

	if err := u.petRepo.Insert(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (u *petUsecase) GetByID(ctx context.Context, id string) (*petdomain.Pet, error) {
	pet, err := u.petRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, petdomain.ErrPetNotFound
	}
	return pet, nil
}

func (u *petUsecase) GetAll(ctx context.Context) ([]petdomain.Pet, error) {
	return u.petRepo.FindAll(ctx)
}

// GetByOwner returns the owner's pets. An owner with no pets gets an empty
// slice, not an error.
func (u *petUsecase) GetByOwner(ctx context.Context, ownerID string) ([]petdomain.Pet, error) {
	return u.petRepo.FindByOwner(ctx, ownerID)
}

func (u *petUsecase) GetByCategory(ctx context.Context, category, status string) ([]petdomain.Pet, error) {
	return u.petRepo.FindByCategoryStatus(ctx, category, status)
}

func (u *petUsecase) Update(ctx context.Context, id string, req *petdto.UpdatePetRequest) (*petdomain.Pet, error) {
	if req.Location != nil {
		if err := req.Location.Validate(); err != nil {
			return nil, apperr.Validation("location", err.Error())
		}
	}

	patch := &petdomain.PetUpdate{
		Name:        req.Name,
		Breed:       req.Breed,
		Status:      req.Status,
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
	}

	// A new image is appended after the existing ones so the sequence keeps
	// upload order.
	if req.ImageURL != nil {
		existing, err := u.petRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, petdomain.ErrPetNotFound
		}
		patch.Images = append(existing.Images, *req.ImageURL)
	}

	if patch.Name == nil && patch.Breed == nil && patch.Status == nil && patch.Category == nil &&
		patch.Description == nil && patch.Images == nil && patch.Location == nil {
		return u.GetByID(ctx, id)
	}

	pet, err := u.petRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, petdomain.ErrPetNotFound
	}
	return pet, nil
}

func (u *petUsecase) Delete(ctx context.Context, id string) error {
	return u.petRepo.DeleteByID(ctx, id)
}

// FindNearby validates the query, runs one geo search against the store and
// joins each hit with its owner's public projection.
func (u *petUsecase) FindNearby(ctx context.Context, q *petdto.NearbyQuery) ([]petdomain.PetWithOwner, error) {
	if q.Lat == nil || q.Lng == nil {
		return nil, petdomain.ErrMissingCoordinates
	}

	maxMeters := float64(DefaultMaxDistanceMeters)
	if q.MaxDistanceMeters != nil {
		d := *q.MaxDistanceMeters
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return nil, petdomain.ErrInvalidDistance
		}
		maxMeters = d
	}

	center := geo.NewPoint(*q.Lng, *q.Lat)
	if err := center.Validate(); err != nil {
		return nil, apperr.Validation("center", err.Error())
	}

	pets, err := u.petRepo.FindNear(ctx, center, maxMeters)
	if err != nil {
		return nil, err
	}

	owners := map[string]*authdomain.PublicUser{}
	results := make([]petdomain.PetWithOwner, 0, len(pets))
	for _, pet := range pets {
		owner, cached := owners[pet.OwnerID]
		if !cached && pet.OwnerID != "" {
			user, err := u.userRepo.FindByID(ctx, pet.OwnerID)
			if err != nil {
				return nil, err
			}
			if user != nil {
				owner = user.Public()
			}
			owners[pet.OwnerID] = owner
		}
		results = append(results, petdomain.PetWithOwner{Pet: pet, Owner: owner})
	}
	return results, nil
}
