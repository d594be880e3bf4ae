package middleware

import (
	"context"
	"errors"
	"fmt"

	"election-service/internal/ports/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const identityContextKey = contextKey("identity")

// Identity is the verified caller extracted from a JWT.
type Identity struct {
	StudentRowID string
	Role         string
}

// JWTAuth middleware for JWT authentication
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization token required"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		identity := &Identity{}
		if sub, ok := claims["sub"].(string); ok {
			identity.StudentRowID = sub
		}
		if role, ok := claims["role"].(string); ok {
			identity.Role = role
		}

		ctx := context.WithValue(c.Request.Context(), identityContextKey, identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the verified identity carries the
// given role. Runs after JWTAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := GetIdentityFromContext(c.Request.Context())
		if err != nil || identity.Role != role {
			c.AbortWithStatusJSON(403, gin.H{"error": fmt.Sprintf("Access denied. %s privileges required.", role)})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts unless the caller holds the teacher (admin) role.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleTeacher)
}

// GetIdentityFromContext retrieves the authenticated identity from context
func GetIdentityFromContext(ctx context.Context) (*Identity, error) {
	identity, ok := ctx.Value(identityContextKey).(*Identity)
	if !ok {
		return nil, errors.New("identity not found in context")
	}
	return identity, nil
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && bearerToken[:7] == "Bearer " {
		return bearerToken[7:]
	}
	return ""
}
