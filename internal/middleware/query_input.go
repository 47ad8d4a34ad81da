package middleware

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/backoffice-api/internal/constants"
)

// QueryInput moves the URL-encoded JSON "input" parameter of a GET request
// into the request body so query and mutation handlers bind the same way.
func QueryInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		input, ok := c.GetQuery(constants.QueryParamInput)
		if !ok || input == "" {
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(strings.NewReader(input))
		c.Request.ContentLength = int64(len(input))
		c.Request.Header.Set("Content-Type", gin.MIMEJSON)
		c.Next()
	}
}
