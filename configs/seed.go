package configs

import (
	"log/slog"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// สร้าง admin ครั้งแรกจาก env
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("admin already exists", "email", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		FullName:    cfg.AdminName,
		Email:       cfg.AdminEmail,
		PhoneNumber: cfg.AdminPhone,
		Password:    string(hash),
		Role:        entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedSequences creates the order counter so the first order gets 1000.
func SeedSequences(db *gorm.DB) error {
	seq := entity.Sequence{Name: entity.OrderNumberSeq}
	return db.Where(entity.Sequence{Name: entity.OrderNumberSeq}).
		Attrs(entity.Sequence{Value: entity.OrderNumberStart - 1}).
		FirstOrCreate(&seq).Error
}
