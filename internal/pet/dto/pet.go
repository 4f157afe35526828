package dto

import "lovemypet-backend/internal/geo"

// CreatePetForm carries the multipart fields of the pet creation request.
// Location is optional and stringified GeoJSON when present.
type CreatePetForm struct {
	Name        string `form:"name" binding:"required"`
	Breed       string `form:"breed"`
	Status      string `form:"status"`
	Category    string `form:"category"`
	Description string `form:"description"`
	Owner       string `form:"owner" binding:"required"`
	Location    string `form:"location"`
}

// CreatePetRequest is the usecase-level input; ImageURL is already uploaded.
type CreatePetRequest struct {
	Name        string
	Breed       string
	Status      string
	Category    string
	Description string
	OwnerID     string
	ImageURL    string
	Location    *geo.Point
}

type UpdatePetForm struct {
	Name        *string `form:"name"`
	Breed       *string `form:"breed"`
	Status      *string `form:"status"`
	Category    *string `form:"category"`
	Description *string `form:"description"`
	Location    *string `form:"location"`
}

type UpdatePetRequest struct {
	Name        *string
	Breed       *string
	Status      *string
	Category    *string
	Description *string
	ImageURL    *string
	Location    *geo.Point
}

type OwnerQuery struct {
	ID string `json:"id" binding:"required"`
}

type CategoryQuery struct {
	Category string `json:"category" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// NearbyQuery is the validated-at-usecase geo query. Lat and Lng stay
// pointers so the usecase, not the transport, decides what "missing" means.
type NearbyQuery struct {
	Lat               *float64
	Lng               *float64
	MaxDistanceMeters *float64
}
