package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-account-portal/internal/domain"
	mdw "go-gin-account-portal/internal/transport/http/middleware"
)

// PagesHandler serves the landing page and the three role-gated pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler { return &PagesHandler{} }

func (h *PagesHandler) Mount(r *gin.Engine) {
	r.GET("/", h.Landing)
	r.GET("/page1", mdw.RequireRoles(domain.RoleViewer), h.Page1)
	r.GET("/page2", mdw.RequireRoles(domain.RoleModerator), h.Page2)
	r.GET("/page3", mdw.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin), h.Page3)
}

// Landing shows the registration view to anonymous visitors and sends
// logged-in ones to their profile.
func (h *PagesHandler) Landing(c *gin.Context) {
	if _, _, ok := mdw.CurrentSession(c); ok {
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	c.HTML(http.StatusOK, "register.html", nil)
}

func (h *PagesHandler) Page1(c *gin.Context) {
	c.HTML(http.StatusOK, "page1.html", nil)
}

func (h *PagesHandler) Page2(c *gin.Context) {
	c.HTML(http.StatusOK, "page2.html", nil)
}

func (h *PagesHandler) Page3(c *gin.Context) {
	s, _, _ := mdw.CurrentSession(c)
	c.HTML(http.StatusOK, "page3.html", gin.H{"Role": int(s.Role)})
}
