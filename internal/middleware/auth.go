package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/token"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

const bearerPrefix = "Bearer "

// Auth validates the bearer credential and exposes the holder identity to
// handlers.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		claims, err := token.Parse(strings.TrimPrefix(header, bearerPrefix), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, string(claims.Role))

		c.Next()
	}
}

// RequireAdmin gates administrative routes. Must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(CtxUserRole) != string(domain.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "administrative capability required"},
			)
			return
		}

		c.Next()
	}
}
