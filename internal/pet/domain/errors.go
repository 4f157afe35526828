package domain

import "errors"

var (
	ErrPetNotFound        = errors.New("pet not found")
	ErrOwnerNotFound      = errors.New("owner (user) not found")
	ErrMissingCoordinates = errors.New("lat and lng query parameters are required")
	ErrInvalidDistance    = errors.New("maxDistance must be a non-negative number")
)
