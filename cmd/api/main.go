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

	"github.com/Bjohan23/SIGES-sub000/internal/core/auth"
	"github.com/Bjohan23/SIGES-sub000/internal/core/cache"
	"github.com/Bjohan23/SIGES-sub000/internal/core/config"
	"github.com/Bjohan23/SIGES-sub000/internal/core/database"
	"github.com/Bjohan23/SIGES-sub000/internal/core/logger"
	"github.com/Bjohan23/SIGES-sub000/internal/core/server"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/internal/service"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/handler"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.Modulo{}, &domain.Rol{}, &domain.Usuario{},
			&domain.Estudiante{}, &domain.FichaSocial{}, &domain.Entrevista{},
			&domain.InformeVisita{}, &domain.RegistroEntrevista{},
			&domain.CronicaCaso{}, &domain.InformeSituacion{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	rdb := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}
	refreshTTL := time.Duration(cfg.JWT.RefreshTTLHours) * time.Hour
	tokens := cache.NewTokenStore(rdb, refreshTTL)

	usuarioRepo := repo.NewUsuarioRepo(db)
	rolRepo := repo.NewRolRepo(db)
	moduloRepo := repo.NewRepo[domain.Modulo](db)
	estudianteRepo := repo.NewEstudianteRepo(db)
	fichaRepo := repo.NewFichaRepo(db)
	entrevistaRepo := repo.NewEntrevistaRepo(db)

	permisos := service.NewPermissionService(usuarioRepo, rolRepo)
	authSvc := service.NewAuthService(usuarioRepo, permisos, tokens, jwter)
	estudianteSvc := service.NewEstudianteService(estudianteRepo)
	fichaSvc := service.NewFichaService(fichaRepo, rdb)
	entrevistaSvc := service.NewEntrevistaService(entrevistaRepo, fichaRepo)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, rolRepo)
	rolSvc := service.NewRolService(rolRepo, moduloRepo)

	cookieMaxAge := int(refreshTTL / time.Second)
	r := router.New(router.Deps{
		Log:         log,
		Cfg:         cfg,
		DB:          db,
		JWTer:       jwter,
		Permisos:    permisos,
		Auth:        handler.NewAuthHandler(authSvc, cfg.JWT.CookieName, cookieMaxAge, cfg.JWT.CookieSecure),
		Estudiantes: handler.NewEstudianteHandler(estudianteSvc),
		Fichas:      handler.NewFichaHandler(fichaSvc),
		Entrevistas: handler.NewEntrevistaHandler(entrevistaSvc),
		Usuarios:    handler.NewUsuarioHandler(usuarioSvc, rolSvc),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
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
