package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lovemypet-backend/internal/apperr"
	authdomain "lovemypet-backend/internal/auth/domain"
	authdto "lovemypet-backend/internal/auth/dto"
	"lovemypet-backend/internal/auth/repository"
	"lovemypet-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	if req.Email == "" {
		return nil, apperr.Validation("email", "must not be empty")
	}
	if req.Password == "" {
		return nil, apperr.Validation("password", "must not be empty")
	}
	if err := req.Location.Validate(); err != nil {
		return nil, apperr.Validation("location", err.Error())
	}

	// Fast path only: the unique email index decides the race.
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrDuplicateEmail
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	location := req.Location
	user := &authdomain.User{
		Email:             req.Email,
		Password:          hashedPassword,
		Name:              req.Name,
		PhoneNumber:       req.PhoneNumber,
		ProfilePictureURL: req.ProfilePictureURL,
		Location:          &location,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{Token: token, User: user.Public()}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, err
	}

	// The login response is a lighter-weight principal than the full
	// profile: no location.
	pub := user.Public()
	pub.Location = nil

	return &authdto.TokenResponse{Token: token, User: pub}, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authdomain.ErrTokenExpired
		}
		return nil, authdomain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, authdomain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authdomain.ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, authdomain.ErrTokenInvalid
	}

	principal := &authdomain.Principal{UserID: userID}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		principal.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		principal.ExpiresAt = exp.Time
	}
	return principal, nil
}

func (u *authUsecase) GetUser(ctx context.Context, id string) (*authdomain.PublicUser, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user.Public(), nil
}

func (u *authUsecase) UpdateUser(ctx context.Context, id string, req *authdto.UpdateUserRequest) (*authdomain.PublicUser, error) {
	if req.Location != nil {
		if err := req.Location.Validate(); err != nil {
			return nil, apperr.Validation("location", err.Error())
		}
	}

	// req.Password is dropped here: password changes never go through a
	// generic profile update.
	patch := &authdomain.UserUpdate{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Location:    req.Location,
	}

	// Nothing left to set once the password field is dropped.
	if patch.Name == nil && patch.Email == nil && patch.PhoneNumber == nil && patch.Location == nil {
		return u.GetUser(ctx, id)
	}

	user, err := u.userRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user.Public(), nil
}

// DeleteUser removes the user record only. Pets keep a dangling owner
// reference (orphan policy).
func (u *authUsecase) DeleteUser(ctx context.Context, id string) error {
	return u.userRepo.DeleteByID(ctx, id)
}

func (u *authUsecase) generateToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
