package middleware

import (
	"context"
	"net/http"

	"familykitchen/internal/domain"
	"familykitchen/internal/pkg/jwt"
	"familykitchen/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token.
const SessionCookie = "auth_token"

const userKey = "user"

// UserLoader resolves the user a session token points at.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SessionAuth accepts requests carrying a valid session cookie whose user
// still exists. Every rejection has the same body so callers cannot tell a
// missing cookie from a forged or stale one.
func SessionAuth(tokens *jwt.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			unauthorized(c)
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			unauthorized(c)
			return
		}

		c.Set("user_id", user.ID)
		c.Set("is_guest", user.IsGuest)
		c.Set(userKey, user)

		c.Next()
	}
}

// CurrentUser returns the user stored by SessionAuth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok && u != nil
}

func unauthorized(c *gin.Context) {
	response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
}
