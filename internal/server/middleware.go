package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxEmail  = "userEmail"
)

// requireAuth validates the bearer token and stores the caller's identity in
// the request context.
func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	identity, err := s.auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.Set(ctxUserID, identity.UserID)
	c.Set(ctxEmail, identity.Email)
	c.Next()
}

// requireAdmin re-fetches the caller from the store and checks the admin
// flag. The token alone is never trusted for privilege: revoking admin takes
// effect on the next request.
func (s *Server) requireAdmin(c *gin.Context) {
	user, err := s.users.GetUserByID(c.GetInt64(ctxUserID))
	if err != nil || !user.IsAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}
	c.Next()
}
