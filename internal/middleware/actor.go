package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/backoffice-api/internal/constants"
	apierrors "github.com/yukikurage/backoffice-api/internal/errors"
)

// ResolveActor reads the caller's user id from the X-Actor-ID header. The
// header is optional; a malformed value is rejected. Who may send it is
// decided upstream of this service.
func ResolveActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(constants.HeaderActorID)
		if raw == "" {
			c.Next()
			return
		}

		actorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || actorID == 0 {
			apierrors.BadRequest(c, "Invalid "+constants.HeaderActorID+" header")
			return
		}

		c.Set(constants.ContextKeyActorID, actorID)
		c.Next()
	}
}

// GetActorID retrieves the calling user id from context
func GetActorID(c *gin.Context) (uint64, bool) {
	actorID, exists := c.Get(constants.ContextKeyActorID)
	if !exists {
		return 0, false
	}

	switch v := actorID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
