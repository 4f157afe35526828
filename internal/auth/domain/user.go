package domain

import (
	"time"

	"lovemypet-backend/internal/geo"
)

type User struct {
	ID                string     `bson:"_id,omitempty" json:"id"`
	Email             string     `bson:"email" json:"email"`
	Password          string     `bson:"password" json:"-"` // bcrypt digest, never serialized
	Name              string     `bson:"name" json:"name"`
	PhoneNumber       string     `bson:"phoneNumber" json:"phoneNumber"`
	ProfilePictureURL string     `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Location          *geo.Point `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdate is a partial patch for a user record. The password is absent on
// purpose: it is never settable through a generic update.
type UserUpdate struct {
	Name              *string    `bson:"name,omitempty"`
	Email             *string    `bson:"email,omitempty"`
	PhoneNumber       *string    `bson:"phoneNumber,omitempty"`
	ProfilePictureURL *string    `bson:"profilePicture,omitempty"`
	Location          *geo.Point `bson:"location,omitempty"`
}

// PublicUser is the projection returned to clients: no password digest, no
// store metadata, location flattened to a [lng, lat] pair.
type PublicUser struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PhoneNumber       string    `json:"phoneNumber"`
	ProfilePictureURL string    `json:"profilePicture,omitempty"`
	Location          []float64 `json:"location,omitempty"`
}

// Public returns the user's public projection including the location pair.
func (u *User) Public() *PublicUser {
	p := &PublicUser{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		PhoneNumber:       u.PhoneNumber,
		ProfilePictureURL: u.ProfilePictureURL,
	}
	if u.Location != nil {
		p.Location = []float64{u.Location.Lng(), u.Location.Lat()}
	}
	return p
}

// Principal is the authenticated identity derived from a valid token.
type Principal struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
