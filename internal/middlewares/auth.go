package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/transitpay/settlement-service/internal/models"
)

const contextReviewerKey = "currentReviewer"

// Claims are the token claims the external auth service issues. This service
// trusts them as the opaque "current user" context.
type Claims struct {
	Sub      string `json:"sub"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and stores the reviewer identity in the
// request context. Token issuance lives in the external auth collaborator.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			return
		}

		claims, err := parseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(contextReviewerKey, models.Reviewer{
			ID:       claims.Sub,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// RequireElevatedRole gates the settlement endpoints to reviewer roles.
// Services still re-check, so a mis-wired route fails closed.
func RequireElevatedRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentReviewer(c).IsElevated() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// CurrentReviewer returns the reviewer stored by Auth, or a zero Reviewer
// (which holds no role) when the middleware did not run.
func CurrentReviewer(c *gin.Context) models.Reviewer {
	if v, ok := c.Get(contextReviewerKey); ok {
		if reviewer, ok := v.(models.Reviewer); ok {
			return reviewer
		}
	}
	return models.Reviewer{}
}

func parseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
