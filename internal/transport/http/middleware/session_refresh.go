package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-account-portal/internal/core/session"
	"go-gin-account-portal/internal/domain"
)

// SessionRefresh runs before every handler. A request carrying a live
// session costs exactly one user-store read: the session's cached
// identifier and role are overwritten with the store's current values
// so later gating decisions see the role as of this request. A session
// whose user no longer exists is destroyed and the request is
// redirected to /login without reaching any handler.
func SessionRefresh(store session.Store, users domain.UserRepository, cookieName string, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		s, err := store.Get(c.Request.Context(), token)
		if err != nil {
			l.Error("session lookup", zap.Error(err))
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		if s == nil {
			// Unknown or expired token: proceed unauthenticated.
			c.Next()
			return
		}

		u, err := users.FindByID(s.UserID)
		if err != nil {
			l.Error("session user lookup", zap.Error(err), zap.String("user_id", s.UserID))
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		if u == nil {
			_ = store.Destroy(c.Request.Context(), token)
			clearSessionCookie(c, cookieName)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		s.UserID = u.ID
		s.Role = u.Role
		if err := store.Set(c.Request.Context(), token, s); err != nil {
			l.Error("session refresh write", zap.Error(err))
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}

		AttachSession(c, token, s)
		c.Next()
	}
}

func clearSessionCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}
