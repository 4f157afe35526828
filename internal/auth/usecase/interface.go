package usecase

import (
	"context"

	authdomain "lovemypet-backend/internal/auth/domain"
	authdto "lovemypet-backend/internal/auth/dto"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	ValidateToken(tokenString string) (*authdomain.Principal, error)
	GetUser(ctx context.Context, id string) (*authdomain.PublicUser, error)
	UpdateUser(ctx context.Context, id string, req *authdto.UpdateUserRequest) (*authdomain.PublicUser, error)
	DeleteUser(ctx context.Context, id string) error
}
