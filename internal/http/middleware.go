package http

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/auth"
)

const (
	bearerPrefix     = "Bearer "
	claimsContextKey = "sessionClaims"
	tokenContextKey  = "sessionToken"
)

// requireAuth is the guard in front of every protected route. Missing or
// malformed headers and invalid tokens all get the same 401 response, so the
// client learns nothing about which check rejected the request.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !utf8.ValidString(header) {
			rejectUnauthorized(c)
			return
		}

		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || token == "" {
			rejectUnauthorized(c)
			return
		}

		claims, err := h.auth.ParseToken(token)
		if err != nil {
			rejectUnauthorized(c)
			return
		}

		c.Set(claimsContextKey, claims)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

func rejectUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
}

// sessionClaims returns the claims the guard attached to the request.
func sessionClaims(c *gin.Context) (auth.Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return auth.Claims{}, false
	}
	claims, ok := value.(auth.Claims)
	return claims, ok
}

// sessionToken returns the raw bearer token the guard validated.
func sessionToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(tokenContextKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
