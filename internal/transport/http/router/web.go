package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-gin-account-portal/internal/core/session"
	"go-gin-account-portal/internal/domain"
	"go-gin-account-portal/internal/transport/http/handler"
	mdw "go-gin-account-portal/internal/transport/http/middleware"
	"go-gin-account-portal/internal/upload"
)

type Options struct {
	CookieName    string
	SessionTTL    time.Duration
	TemplatesGlob string // e.g. web/templates/*.html
	UploadDir     string
	UploadPath    string // public URL prefix for stored images
	MaxUploadMB   int64
}

// NewWebEngine assembles the full engine: ambient middleware chain,
// session refresh on every route, templates, static uploads, and the
// page handlers.
func NewWebEngine(l *zap.Logger, users domain.UserRepository, store session.Store, intake *upload.Intake, o Options) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(300),
		// Upload cap plus headroom for the rest of the form.
		mdw.MaxBodyBytes((o.MaxUploadMB+1)<<20),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.SessionRefresh(store, users, o.CookieName, l),
	)

	r.LoadHTMLGlob(o.TemplatesGlob)
	r.Static(o.UploadPath, o.UploadDir)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewPagesHandler().Mount(r)
	handler.NewAccountHandler(users, store, o.CookieName, o.SessionTTL, l).Mount(r)
	handler.NewProfileHandler(users, intake, l).Mount(r)

	return r
}
