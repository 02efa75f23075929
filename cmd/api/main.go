package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-gin-account-portal/internal/core/config"
	"go-gin-account-portal/internal/core/database"
	"go-gin-account-portal/internal/core/logger"
	"go-gin-account-portal/internal/core/server"
	"go-gin-account-portal/internal/core/session"
	"go-gin-account-portal/internal/domain"
	"go-gin-account-portal/internal/repo"
	"go-gin-account-portal/internal/transport/http/router"
	"go-gin-account-portal/internal/upload"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// An unreachable database is fatal to the whole process.
	db := mustOpenDB(cfg, log)
	log.Info("database connected",
		zap.String("driver", cfg.DB.Driver),
		zap.String("dsn", database.MaskDSN(cfg.DB.DSN)),
	)

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	users := repo.NewUserRepo(db)
	store, closeStore := buildSessionStore(cfg, log)
	defer closeStore()

	intake := upload.NewIntake(cfg.Upload.Dir, int64(cfg.Upload.MaxSizeMB)<<20)

	r := router.NewWebEngine(log, users, store, intake, router.Options{
		CookieName:    cfg.Session.CookieName,
		SessionTTL:    time.Duration(cfg.Session.TTLHours) * time.Hour,
		TemplatesGlob: "web/templates/*.html",
		UploadDir:     cfg.Upload.Dir,
		UploadPath:    cfg.Upload.PublicPath,
		MaxUploadMB:   int64(cfg.Upload.MaxSizeMB),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.Build(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	log.Info("portal starting",
		zap.String("addr", addr),
		zap.String("open", "http://"+host4human+":"+fmt.Sprint(cfg.App.HTTP.Port)),
		zap.String("session_store", cfg.Session.Store),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("portal start FAILED", zap.Error(err))
		}
	}()
	log.Info("portal started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("portal stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

func buildSessionStore(cfg *config.Config, l *zap.Logger) (session.Store, func()) {
	switch cfg.Session.Store {
	case "redis":
		s := session.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		return s, func() { _ = s.Close() }
	default:
		s := session.NewMemoryStore()
		s.StartJanitor(time.Duration(cfg.Session.SweepMinutes) * time.Minute)
		return s, s.Close
	}
}
