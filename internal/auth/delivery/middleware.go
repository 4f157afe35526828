package delivery

import (
	"net/http"
	"strings"

	"lovemypet-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// principalKey is where the middleware stores the authenticated principal on
// the gin context.
const principalKey = "principal"

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		principal, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			// ErrTokenExpired and ErrTokenInvalid both collapse to 401 here;
			// the distinction stays visible in logs and tests.
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}
