package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-account-portal/internal/domain"
	mdw "go-gin-account-portal/internal/transport/http/middleware"
	"go-gin-account-portal/internal/upload"
)

const msgUserNotFound = "User not found"

type ProfileHandler struct {
	users  domain.UserRepository
	intake *upload.Intake
	log    *zap.Logger
}

func NewProfileHandler(users domain.UserRepository, intake *upload.Intake, l *zap.Logger) *ProfileHandler {
	return &ProfileHandler{users: users, intake: intake, log: l}
}

func (h *ProfileHandler) Mount(r *gin.Engine) {
	r.GET("/profile", h.Show)
	r.GET("/profile/edit", h.ShowEdit)
	r.POST("/profile/edit", h.Edit)
}

// Panel is the role-specific block on the profile page. Only the four
// known role values have content; anything else renders empty.
type Panel struct {
	Heading string
	Body    string
}

func rolePanel(r domain.Role) Panel {
	switch r {
	case domain.RoleViewer:
		return Panel{"Your panel (role 1)", "Welcome, regular user! Here you can view your own content."}
	case domain.RoleModerator:
		return Panel{"Moderator panel (role 2)", "You can manage comments and reports."}
	case domain.RoleAdmin:
		return Panel{"Admin panel (role 3)", "Manage users, settings and content."}
	case domain.RoleSuperAdmin:
		return Panel{"Super admin (role 4)", "Full control over the system, including security and backups."}
	}
	return Panel{}
}

func (h *ProfileHandler) Show(c *gin.Context) {
	s, _, ok := mdw.CurrentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	u, err := h.users.FindByID(s.UserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if u == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":  u,
		"Panel": rolePanel(u.Role),
	})
}

func (h *ProfileHandler) ShowEdit(c *gin.Context) {
	s, _, ok := mdw.CurrentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	u, err := h.users.FindByID(s.UserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if u == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "edit_profile.html", gin.H{"User": u})
}

func (h *ProfileHandler) Edit(c *gin.Context) {
	s, _, ok := mdw.CurrentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	u, err := h.users.FindByID(s.UserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if u == nil {
		// Unlike the GETs, a vanished user on submit is a 404.
		c.String(http.StatusNotFound, msgUserNotFound)
		return
	}

	// Blank names are stored as explicit NULL, not left as-is.
	u.FirstName = optional(c.PostForm("firstName"))
	u.LastName = optional(c.PostForm("lastName"))
	u.Email = c.PostForm("email")

	fh, err := c.FormFile("profilePicture")
	if err != nil {
		fh = nil // no file attached to the form
	}
	res, err := h.intake.Store(fh)
	if err != nil {
		h.log.Error("store upload", zap.Error(err))
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	// A rejected file (bad extension, oversized, absent) is silently
	// ignored: the rest of the edit still goes through.
	if res.Status == upload.Accepted {
		u.ProfilePicture = res.Filename
	}

	if err := h.users.Update(u); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
