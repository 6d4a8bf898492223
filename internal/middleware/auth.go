package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const ContextIdentity = "identity"

// AuthMiddleware validates the bearer token and stores the caller identity.
// Role strings are normalized here and nowhere else.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			deny(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			deny(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			deny(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			deny(c, "invalid_token_claims")
			return
		}

		sub, _ := claims.GetSubject()
		rawRole, _ := claims["role"].(string)
		role, ok := scope.ParseRole(rawRole)
		if sub == "" || !ok {
			deny(c, "invalid_token_payload")
			return
		}

		c.Set(ContextIdentity, scope.Identity{
			UserID:       sub,
			Role:         role,
			SedeID:       stringClaim(claims, "sede_id"),
			FranquiciaID: stringClaim(claims, "franquicia_id"),
			Email:        stringClaim(claims, "email"),
			Username:     stringClaim(claims, "username"),
		})

		c.Next()
	}
}

func deny(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Credencial inválida o ausente.")
	c.Abort()
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return strings.TrimSpace(v)
}

// Identity returns the caller set by AuthMiddleware.
func Identity(c *gin.Context) scope.Identity {
	id, _ := c.MustGet(ContextIdentity).(scope.Identity)
	return id
}
