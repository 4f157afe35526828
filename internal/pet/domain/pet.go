package domain

import (
	"time"

	authdomain "lovemypet-backend/internal/auth/domain"
	"lovemypet-backend/internal/geo"
)

// Pet categories. Stored as plain strings so new categories do not need a
// migration.
const (
	CategoryDog = "Dog"
	CategoryCat = "Cat"
)

type Pet struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Breed       string     `bson:"breed" json:"breed"`
	Status      string     `bson:"status" json:"status"`
	Category    string     `bson:"category" json:"category"`
	Description string     `bson:"description" json:"description"`
	Images      []string   `bson:"images" json:"images"` // insertion order = upload order
	OwnerID     string     `bson:"owner,omitempty" json:"owner,omitempty"`
	Location    *geo.Point `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// PetUpdate is a partial patch for a pet record.
type PetUpdate struct {
	Name        *string    `bson:"name,omitempty"`
	Breed       *string    `bson:"breed,omitempty"`
	Status      *string    `bson:"status,omitempty"`
	Category    *string    `bson:"category,omitempty"`
	Description *string    `bson:"description,omitempty"`
	Images      []string   `bson:"images,omitempty"`
	Location    *geo.Point `bson:"location,omitempty"`
}

// PetWithOwner is the nearby-search result shape: the pet with its owner
// resolved to a public projection. Owner is null when the owning user no
// longer exists (orphaned reference).
type PetWithOwner struct {
	Pet
	Owner *authdomain.PublicUser `json:"owner"`
}
