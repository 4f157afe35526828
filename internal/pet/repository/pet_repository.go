package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lovemypet-backend/internal/apperr"
	"lovemypet-backend/internal/geo"
	petdomain "lovemypet-backend/internal/pet/domain"

	"github.com/google/uuid"
)

const petsCollection = "pets"

// petRepository implements PetRepository on a mongo collection.
type petRepository struct {
	pets *mongo.Collection
}

// NewPetRepository creates a new instance of petRepository
func NewPetRepository(db *mongo.Database) PetRepository {
	return &petRepository{
		pets: db.Collection(petsCollection),
	}
}

func (r *petRepository) Insert(ctx context.Context, pet *petdomain.Pet) error {
	pet.ID = uuid.New().String()
	pet.CreatedAt = time.Now()
	pet.UpdatedAt = time.Now()
	if pet.Images == nil {
		pet.Images = []string{}
	}
	if _, err := r.pets.InsertOne(ctx, pet); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *petRepository) FindByID(ctx context.Context, id string) (*petdomain.Pet, error) {
	var pet petdomain.Pet
	err := r.pets.FindOne(ctx, bson.M{"_id": id}).Decode(&pet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Store(err)
	}
	return &pet, nil
}

func (r *petRepository) FindAll(ctx context.Context) ([]petdomain.Pet, error) {
	return r.find(ctx, bson.M{})
}

func (r *petRepository) FindByOwner(ctx context.Context, ownerID string) ([]petdomain.Pet, error) {
	return r.find(ctx, bson.M{"owner": ownerID})
}

func (r *petRepository) FindByCategoryStatus(ctx context.Context, category, status string) ([]petdomain.Pet, error) {
	return r.find(ctx, bson.M{"category": category, "status": status})
}

func (r *petRepository) UpdateByID(ctx context.Context, id string, patch *petdomain.PetUpdate) (*petdomain.Pet, error) {
	update := bson.M{"$set": patch, "$currentDate": bson.M{"updatedAt": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pet petdomain.Pet
	err := r.pets.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&pet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Store(err)
	}
	return &pet, nil
}

func (r *petRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.pets.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Store(err)
	}
	if res.DeletedCount == 0 {
		return petdomain.ErrPetNotFound
	}
	return nil
}

// FindNear delegates distance and ordering to the 2dsphere index: $near
// returns matches sorted nearest-first and $maxDistance bounds the search in
// meters.
func (r *petRepository) FindNear(ctx context.Context, center geo.Point, maxMeters float64) ([]petdomain.Pet, error) {
	filter := bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry":    center,
				"$maxDistance": maxMeters,
			},
		},
	}
	return r.find(ctx, filter)
}

func (r *petRepository) find(ctx context.Context, filter bson.M) ([]petdomain.Pet, error) {
	cursor, err := r.pets.Find(ctx, filter)
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer cursor.Close(ctx)

	pets := []petdomain.Pet{}
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, apperr.Store(err)
	}
	return pets, nil
}
