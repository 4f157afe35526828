package delivery

import (
	"errors"
	"net/http"

	"lovemypet-backend/internal/apperr"
	authdomain "lovemypet-backend/internal/auth/domain"
	authdto "lovemypet-backend/internal/auth/dto"
	"lovemypet-backend/internal/auth/usecase"
	"lovemypet-backend/internal/geo"
	"lovemypet-backend/pkg/logger"
	"lovemypet-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	uploader    storage.Uploader
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, uploader storage.Uploader) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		uploader:    uploader,
	}
}

// Register handles POST /api/users/register. The body is multipart form data
// with an optional profilePicture file; the file is uploaded to object
// storage first and only its URL reaches the usecase.
func (h *AuthHandler) Register(c *gin.Context) {
	var form authdto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := geo.ParsePoint([]byte(form.Location))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location must be a GeoJSON Point"})
		return
	}

	req := &authdto.RegisterRequest{
		Name:        form.Name,
		Email:       form.Email,
		Password:    form.Password,
		PhoneNumber: form.PhoneNumber,
		Location:    location,
	}

	if file, err := c.FormFile("profilePicture"); err == nil {
		url, err := storage.UploadFormFile(c.Request.Context(), h.uploader, file)
		if err != nil {
			logger.Log.Errorw("profile picture upload failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		req.ProfilePictureURL = url
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) || errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the profile of the authenticated principal.
func (h *AuthHandler) Me(c *gin.Context) {
	principal := PrincipalFromContext(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.authUsecase.GetUser(c.Request.Context(), principal.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req authdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.authUsecase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

// writeError maps usecase errors to transport status codes. The usecases
// themselves never decide status codes.
func (h *AuthHandler) writeError(c *gin.Context, err error) {
	var vErr *apperr.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, authdomain.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
	case errors.Is(err, authdomain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, authdomain.ErrTokenExpired), errors.Is(err, authdomain.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.Log.Errorw("auth request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}

// PrincipalFromContext returns the principal stored by AuthMiddleware, or nil.
func PrincipalFromContext(c *gin.Context) *authdomain.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, ok := v.(*authdomain.Principal)
	if !ok {
		return nil
	}
	return principal
}
