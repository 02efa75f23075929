package middleware

import (
	"github.com/gin-gonic/gin"

	"go-gin-account-portal/internal/core/session"
)

const (
	ctxKeySession      = "session"
	ctxKeySessionToken = "sessionToken"
)

// AttachSession records the refreshed session on the request context.
// SessionRefresh calls it once per authenticated request.
func AttachSession(c *gin.Context, token string, s *session.Session) {
	c.Set(ctxKeySession, s)
	c.Set(ctxKeySessionToken, token)
}

// CurrentSession returns the refreshed session attached by
// SessionRefresh, with its token and whether one is present.
func CurrentSession(c *gin.Context) (*session.Session, string, bool) {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return nil, "", false
	}
	s, ok := v.(*session.Session)
	if !ok || s == nil {
		return nil, "", false
	}
	return s, c.GetString(ctxKeySessionToken), true
}
