package delivery

import (
	"net/http"
	"strings"

	authdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := bearerUser(c, authUsecase)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// ScopeMiddleware resolves the collection scope for a request: the
// token's user when one is presented and valid, the guest scope
// otherwise. Guest and signed-in collections are disjoint; switching
// scope swaps the visible collection, it never merges.
func ScopeMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := bearerUser(c, authUsecase); ok {
			c.Set("user", user)
			c.Set("userID", user.ID)
		} else {
			c.Set("userID", authdomain.GuestID)
		}
		c.Next()
	}
}

func bearerUser(c *gin.Context, authUsecase usecase.AuthUsecase) (*authdomain.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	user, err := authUsecase.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return user, true
}
