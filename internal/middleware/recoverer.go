package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/backoffice-api/internal/errors"
	"github.com/yukikurage/backoffice-api/internal/logs"
)

// Recoverer catches a panicking handler, logs the stack and answers with the
// standard internal error body.
func Recoverer() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logs.Logger.Errorf("panic: %v reqid=%s uri=%s method=%s\nstack:\n%s",
					rec, GetRequestID(c), c.Request.RequestURI, c.Request.Method, string(debug.Stack()))
				apierrors.InternalError(c, "unexpected server error (see logs by reqid)")
			}
		}()
		c.Next()
	}
}
