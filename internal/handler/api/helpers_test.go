//go:build unit

package api_test

import (
	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withPrincipal stands in for RequireAuth.
func withPrincipal(p *auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p != nil {
			c.Set("principal", *p)
		}
		c.Next()
	}
}

func newPrincipal(role user.Role) auth.Principal {
	return auth.NewPrincipal(uuid.New(), "caller@example.com", role)
}
