// Seeds the permission catalogue, the ADMIN rol and an initial admin user.
// Safe to run repeatedly: existing rows are left untouched.
package main

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/core/config"
	"github.com/Bjohan23/SIGES-sub000/internal/core/database"
	"github.com/Bjohan23/SIGES-sub000/internal/core/logger"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := db.AutoMigrate(&domain.Modulo{}, &domain.Rol{}, &domain.Usuario{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	if err := seed(db, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed done")
}

func seed(db *gorm.DB, log *zap.Logger) error {
	// One modulo per permission code, plus the ADMIN wildcard.
	codes := append(domain.PermisoCodes(), domain.AdminWildcard)
	for _, code := range codes {
		var n int64
		if err := db.Model(&domain.Modulo{}).Where("codigo = ?", code).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		m := domain.Modulo{
			ID:     utils.NewID(),
			Codigo: code,
			Nombre: strings.ReplaceAll(strings.ToLower(code), "_", " "),
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		log.Info("modulo created", zap.String("codigo", code))
	}

	var adminRol domain.Rol
	err := db.Where("nombre = ?", "ADMINISTRADOR").First(&adminRol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var wildcard domain.Modulo
		if err := db.Where("codigo = ?", domain.AdminWildcard).First(&wildcard).Error; err != nil {
			return err
		}
		adminRol = domain.Rol{
			ID:          utils.NewID(),
			Nombre:      "ADMINISTRADOR",
			Descripcion: "Acceso total al sistema",
			Modulos:     []*domain.Modulo{&wildcard},
		}
		if err := db.Create(&adminRol).Error; err != nil {
			return err
		}
		log.Info("rol created", zap.String("nombre", adminRol.Nombre))
	} else if err != nil {
		return err
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@siges.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "cambiar.esta.clave"
	}

	var n int64
	if err := db.Model(&domain.Usuario{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		admin := domain.Usuario{
			ID:           utils.NewID(),
			Email:        email,
			PasswordHash: utils.HashPassword(password),
			Nombres:      "Administrador",
			Apellidos:    "Sistema",
			RolID:        adminRol.ID,
			Activo:       true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Info("admin user created", zap.String("email", email))
	}
	return nil
}
