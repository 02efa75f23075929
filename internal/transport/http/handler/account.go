package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-gin-account-portal/internal/core/session"
	"go-gin-account-portal/internal/domain"
	"go-gin-account-portal/internal/repo"
	mdw "go-gin-account-portal/internal/transport/http/middleware"
	"go-gin-account-portal/pkg/utils"
)

// Fixed response bodies. Login failure is one message for both unknown
// email and wrong password so callers cannot enumerate accounts.
const (
	msgInvalidRole        = "Invalid role"
	msgRegistrationError  = "Registration error"
	msgInvalidCredentials = "Invalid email or password"
)

type AccountHandler struct {
	users      domain.UserRepository
	store      session.Store
	cookieName string
	sessionTTL time.Duration
	log        *zap.Logger
}

func NewAccountHandler(users domain.UserRepository, store session.Store, cookieName string, ttl time.Duration, l *zap.Logger) *AccountHandler {
	return &AccountHandler{users: users, store: store, cookieName: cookieName, sessionTTL: ttl, log: l}
}

func (h *AccountHandler) Mount(r *gin.Engine) {
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

func (h *AccountHandler) ShowRegister(c *gin.Context) {
	if _, _, ok := mdw.CurrentSession(c); ok {
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	c.HTML(http.StatusOK, "register.html", nil)
}

func (h *AccountHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	role, err := domain.ParseRole(c.PostForm("role"))
	if err != nil {
		c.String(http.StatusBadRequest, msgInvalidRole)
		return
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         role,
	}
	if err := h.users.Create(u); err != nil {
		if !repo.IsDuplicate(err) {
			h.log.Error("create user", zap.Error(err))
		}
		c.String(http.StatusBadRequest, msgRegistrationError)
		return
	}

	if err := h.startSession(c, u); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}

func (h *AccountHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *AccountHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	u, err := h.users.FindByEmail(email)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		c.String(http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := h.startSession(c, u); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}

// Logout destroys whatever session the cookie references and redirects
// to the landing page. There is no error path: a missing or already
// dead session logs out the same way.
func (h *AccountHandler) Logout(c *gin.Context) {
	if _, token, ok := mdw.CurrentSession(c); ok {
		_ = h.store.Destroy(c.Request.Context(), token)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AccountHandler) startSession(c *gin.Context, u *domain.User) error {
	token := session.NewToken()
	if err := h.store.Set(c.Request.Context(), token, session.New(u, h.sessionTTL)); err != nil {
		return err
	}
	c.SetCookie(h.cookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}
