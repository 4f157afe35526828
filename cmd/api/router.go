package api

import (
	"net/http"

	authdelivery "lovemypet-backend/internal/auth/delivery"
	authUsecase "lovemypet-backend/internal/auth/usecase"
	petdelivery "lovemypet-backend/internal/pet/delivery"
	petUsecase "lovemypet-backend/internal/pet/usecase"
	"lovemypet-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, petUc petUsecase.PetUsecase, uploader storage.Uploader) {
	authHandler := authdelivery.NewAuthHandler(authUc, uploader)
	petHandler := petdelivery.NewPetHandler(petUc, uploader)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", authHandler.Register)
			users.POST("/login", authHandler.Login)
			users.GET("/me", authdelivery.AuthMiddleware(authUc), authHandler.Me)
			users.GET("/:id", authHandler.GetUser)
			users.PUT("/:id", authdelivery.AuthMiddleware(authUc), authHandler.UpdateUser)
			users.DELETE("/:id", authdelivery.AuthMiddleware(authUc), authHandler.DeleteUser)
		}

		// Pet routes. /nearby is registered before /:id so it is matched as
		// a literal segment.
		pets := api.Group("/pets")
		{
			pets.GET("", petHandler.GetAllPets)
			pets.GET("/nearby", petHandler.GetPetsNearby)
			pets.POST("/owner", petHandler.GetPetsByOwner)
			pets.POST("/category", petHandler.GetPetsByCategory)
			pets.GET("/:id", petHandler.GetPet)
			pets.POST("", authdelivery.AuthMiddleware(authUc), petHandler.CreatePet)
			pets.PUT("/:id", authdelivery.AuthMiddleware(authUc), petHandler.UpdatePet)
			pets.DELETE("/:id", authdelivery.AuthMiddleware(authUc), petHandler.DeletePet)
		}
	}
}
