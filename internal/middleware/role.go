package middleware

import (
	"net/http"

	"familykitchen/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireMember lets only registered family members through. It must run
// after SessionAuth.
func RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			unauthorized(c)
			return
		}

		if !u.IsMember() {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Guests cannot do this")
			return
		}

		c.Next()
	}
}
