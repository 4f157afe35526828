package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authdomain "lovemypet-backend/internal/auth/domain"
	authdto "lovemypet-backend/internal/auth/dto"
)

type stubAuthUsecase struct {
	principal   *authdomain.Principal
	validateErr error
}

func (s *stubAuthUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	return nil, nil
}
func (s *stubAuthUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return nil, nil
}
func (s *stubAuthUsecase) ValidateToken(tokenString string) (*authdomain.Principal, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.principal, nil
}
func (s *stubAuthUsecase) GetUser(ctx context.Context, id string) (*authdomain.PublicUser, error) {
	return nil, authdomain.ErrUserNotFound
}
func (s *stubAuthUsecase) UpdateUser(ctx context.Context, id string, req *authdto.UpdateUserRequest) (*authdomain.PublicUser, error) {
	return nil, authdomain.ErrUserNotFound
}
func (s *stubAuthUsecase) DeleteUser(ctx context.Context, id string) error { return nil }

func middlewareRequest(t *testing.T, stub *stubAuthUsecase, header string) (*httptest.ResponseRecorder, *authdomain.Principal) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var seen *authdomain.Principal
	r.GET("/protected", AuthMiddleware(stub), func(c *gin.Context) {
		seen = PrincipalFromContext(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w, seen
}

func TestAuthMiddleware(t *testing.T) {
	stub := &stubAuthUsecase{principal: &authdomain.Principal{UserID: "user-1"}}

	w, seen := middlewareRequest(t, stub, "Bearer sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", seen.UserID)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w, _ := middlewareRequest(t, &stubAuthUsecase{}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	w, _ := middlewareRequest(t, &stubAuthUsecase{}, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectedToken(t *testing.T) {
	stub := &stubAuthUsecase{validateErr: authdomain.ErrTokenExpired}
	w, _ := middlewareRequest(t, stub, "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	stub = &stubAuthUsecase{validateErr: authdomain.ErrTokenInvalid}
	w, _ = middlewareRequest(t, stub, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
