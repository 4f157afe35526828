package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"lovemypet-backend/internal/apperr"
	"lovemypet-backend/internal/geo"
	petdomain "lovemypet-backend/internal/pet/domain"
	petdto "lovemypet-backend/internal/pet/dto"
	"lovemypet-backend/internal/pet/usecase"
	"lovemypet-backend/pkg/logger"
	"lovemypet-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	petUsecase usecase.PetUsecase
	uploader   storage.Uploader
}

func NewPetHandler(petUsecase usecase.PetUsecase, uploader storage.Uploader) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		uploader:   uploader,
	}
}

// CreatePet handles POST /api/pets: multipart form with an optional image
// file, uploaded to object storage before the usecase call.
func (h *PetHandler) CreatePet(c *gin.Context) {
	var form petdto.CreatePetForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := &petdto.CreatePetRequest{
		Name:        form.Name,
		Breed:       form.Breed,
		Status:      form.Status,
		Category:    form.Category,
		Description: form.Description,
		OwnerID:     form.Owner,
	}

	if form.Location != "" {
		point, err := geo.ParsePoint([]byte(form.Location))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location must be a GeoJSON Point"})
			return
		}
		req.Location = &point
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := storage.UploadFormFile(c.Request.Context(), h.uploader, file)
		if err != nil {
			logger.Log.Errorw("pet image upload failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		req.ImageURL = url
	}

	pet, err := h.petUsecase.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) GetPet(c *gin.Context) {
	pet, err := h.petUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) GetAllPets(c *gin.Context) {
	pets, err := h.petUsecase.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) GetPetsByOwner(c *gin.Context) {
	var q petdto.OwnerQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pets, err := h.petUsecase.GetByOwner(c.Request.Context(), q.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) GetPetsByCategory(c *gin.Context) {
	var q petdto.CategoryQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pets, err := h.petUsecase.GetByCategory(c.Request.Context(), q.Category, q.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) UpdatePet(c *gin.Context) {
	var form petdto.UpdatePetForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := &petdto.UpdatePetRequest{
		Name:        form.Name,
		Breed:       form.Breed,
		Status:      form.Status,
		Category:    form.Category,
		Description: form.Description,
	}

	if form.Location != nil && *form.Location != "" {
		point, err := geo.ParsePoint([]byte(*form.Location))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location must be a GeoJSON Point"})
			return
		}
		req.Location = &point
	}

	if file, err := c.FormFile("images"); err == nil {
		url, err := storage.UploadFormFile(c.Request.Context(), h.uploader, file)
		if err != nil {
			logger.Log.Errorw("pet image upload failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		req.ImageURL = &url
	}

	pet, err := h.petUsecase.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) DeletePet(c *gin.Context) {
	if err := h.petUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pet deleted successfully"})
}

// GetPetsNearby handles GET /api/pets/nearby?lat=..&lng=..&maxDistance=..
// Malformed numbers are rejected outright instead of being coerced to a
// default.
func (h *PetHandler) GetPetsNearby(c *gin.Context) {
	q := &petdto.NearbyQuery{}

	if raw, ok := c.GetQuery("lat"); ok {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
			return
		}
		q.Lat = &lat
	}
	if raw, ok := c.GetQuery("lng"); ok {
		lng, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lng must be a number"})
			return
		}
		q.Lng = &lng
	}
	if raw, ok := c.GetQuery("maxDistance"); ok {
		dist, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": petdomain.ErrInvalidDistance.Error()})
			return
		}
		q.MaxDistanceMeters = &dist
	}

	pets, err := h.petUsecase.FindNearby(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) writeError(c *gin.Context, err error) {
	var vErr *apperr.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, petdomain.ErrMissingCoordinates), errors.Is(err, petdomain.ErrInvalidDistance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, petdomain.ErrPetNotFound), errors.Is(err, petdomain.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Log.Errorw("pet request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
