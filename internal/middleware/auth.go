package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"charges/internal/domain"
	"charges/internal/service"
)

const (
	ContextKeyRequestID           = "request_id"
	ContextKeyMarketParticipantID = "market_participant_id"
	ContextKeyRole                = "role"
	ContextKeyClaims              = "claims"
)

// AuthMiddleware returns Gin middleware that validates JWT tokens and injects
// the authenticated market participant.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeyMarketParticipantID, claims.MarketParticipantID)
		c.Set(ContextKeyRole, string(claims.Role))
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole returns middleware that checks the participant's role against allowed roles.
func RequireRole(roles ...domain.MarketParticipantRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.MarketParticipantRole(c.GetString(ContextKeyRole))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   gin.H{"code": "FORBIDDEN", "message": "market participant role may not submit charges"},
		})
	}
}

// GetMarketParticipantID extracts the authenticated market participant from the Gin context.
func GetMarketParticipantID(c *gin.Context) (string, error) {
	val := c.GetString(ContextKeyMarketParticipantID)
	if val == "" {
		return "", domain.ErrUnauthorized
	}
	return val, nil
}
