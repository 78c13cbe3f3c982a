package middleware

import (
	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/domain"
)

// ActingUser records who performs the request for audit stamping. Without the
// header, writes are attributed to the system actor.
func ActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-Acting-User")
		if actor == "" {
			actor = domain.SystemActor
		}
		c.Set(string(domain.KeyActor), actor)
		c.Request = c.Request.WithContext(domain.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
