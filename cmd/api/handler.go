package api

import (
	authUsecase "lovemypet-backend/internal/auth/usecase"
	petUsecase "lovemypet-backend/internal/pet/usecase"
	"lovemypet-backend/pkg/logger"
	"lovemypet-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	petUsecase  petUsecase.PetUsecase
	uploader    storage.Uploader
}

func NewHandler(authUc authUsecase.AuthUsecase, petUc petUsecase.PetUsecase, uploader storage.Uploader) *Handler {
	return &Handler{
		authUsecase: authUc,
		petUsecase:  petUc,
		uploader:    uploader,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.petUsecase, h.uploader)

	return r.Run(addr)
}
