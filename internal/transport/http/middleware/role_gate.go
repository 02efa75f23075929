package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-account-portal/internal/domain"
)

// RequireRoles admits only sessions whose role is in the allowed set.
// Membership is exact: there is no hierarchy, a superadmin is not
// admitted to a viewer-only page.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *gin.Context) {
		s, _, ok := CurrentSession(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if _, member := set[s.Role]; !member {
			c.String(http.StatusForbidden, "Access denied. Your role: %d", int(s.Role))
			c.Abort()
			return
		}
		c.Next()
	}
}
