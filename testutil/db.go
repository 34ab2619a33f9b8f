// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/configs"

	"gorm.io/gorm"
)

// NewDB opens a migrated, seeded SQLite file that lives for the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := configs.OpenDB("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedSequences(db); err != nil {
		t.Fatalf("seed sequences: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
