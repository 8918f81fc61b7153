package config

import (
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-management/auth"
	"hotel-management/models"
)

// ConnectDatabase opens the MySQL connection and migrates the three
// collections. The returned handle is read-only after init and injected into
// every store; there is no package-level global.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Item{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedDefaultAdmin creates an admin account on first start if none exists.
// Idempotent; failures are logged, not fatal.
func SeedDefaultAdmin(db *gorm.DB, hasher auth.Hasher, zlog *zap.Logger) {
	var count int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return
	}

	hash, err := hasher.Hash("admin123")
	if err != nil {
		zlog.Warn("failed to hash default admin password", zap.Error(err))
		return
	}
	admin := models.User{
		Username: "admin",
		Email:    "admin@hotel.local",
		Password: hash,
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		zlog.Warn("failed to seed default admin", zap.Error(err))
		return
	}
	zlog.Info("default admin seeded", zap.String("email", admin.Email))
}
