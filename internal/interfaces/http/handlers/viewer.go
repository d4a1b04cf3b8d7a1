package handlers

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/domain/access"
	"inkpress/internal/shared/constants"
)

// viewerFromContext builds the viewer identity from the auth middleware's
// context keys. Returns nil for anonymous requests.
func viewerFromContext(c *gin.Context) *access.Viewer {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return nil
	}

	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		return nil
	}

	return &access.Viewer{
		ID:      userID,
		IsAdmin: c.GetBool(constants.ContextKeyIsAdmin),
	}
}

// currentUserID returns the authenticated user id. Must only be called on
// routes behind RequireAuth.
func currentUserID(c *gin.Context) uint {
	if v := viewerFromContext(c); v != nil {
		return v.ID
	}
	return 0
}
