// Package auth gates protected routes behind a single shared API key.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "x-api-key"

// QueryParam is the query parameter alternative to the header.
const QueryParam = "apikey"

// APIKeyMiddleware accepts a request when either the x-api-key header or
// the apikey query parameter equals the configured key. Otherwise it
// responds 401 and halts the pipeline; no downstream handler runs.
func APIKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(HeaderName) == key || c.Query(QueryParam) == key {
			c.Next()
			return
		}

		c.String(http.StatusUnauthorized, "Unauthorized: invalid API key")
		c.Abort()
	}
}
