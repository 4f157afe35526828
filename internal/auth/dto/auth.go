package dto

import (
	authdomain "lovemypet-backend/internal/auth/domain"
	"lovemypet-backend/internal/geo"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterForm carries the multipart fields of the registration request.
// Location arrives stringified as a GeoJSON Point, same as the rest of the
// form fields; the handler parses it before calling the usecase.
type RegisterForm struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Password    string `form:"password" binding:"required"`
	PhoneNumber string `form:"phoneNumber" binding:"required"`
	Location    string `form:"location" binding:"required"`
}

// RegisterRequest is the usecase-level registration input. ProfilePictureURL
// is already an object-store URL when set; the upload happens at the HTTP
// layer before this request is built.
type RegisterRequest struct {
	Name              string
	Email             string
	Password          string
	PhoneNumber       string
	ProfilePictureURL string
	Location          geo.Point
}

type UpdateUserRequest struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	PhoneNumber *string    `json:"phoneNumber"`
	Location    *geo.Point `json:"location"`
	// Accepted but ignored: password changes never go through a generic
	// profile update.
	Password *string `json:"password"`
}

type TokenResponse struct {
	Token string                 `json:"token"`
	User  *authdomain.PublicUser `json:"user"`
}
