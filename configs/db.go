package configs

import (
	"fmt"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB เปิด connection ตาม DB_DRIVER (sqlite | mysql)
func OpenDB(driver, source string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(source)
	case "mysql":
		dialector = mysql.Open(source)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "mysql" {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// sqlite: one writer, transactions run one after another
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.WaitlistEntry{},
		&entity.Sequence{},
	)
}
