package repository

import (
	"context"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"gorm.io/gorm"
)

type WaitlistRepository struct {
	DB *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{DB: db}
}

func (r *WaitlistRepository) Create(ctx context.Context, e *entity.WaitlistEntry) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

func (r *WaitlistRepository) FindAll(ctx context.Context) ([]entity.WaitlistEntry, error) {
	var out []entity.WaitlistEntry
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

// Emails returns every address on the waitlist.
func (r *WaitlistRepository) Emails(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.DB.WithContext(ctx).Model(&entity.WaitlistEntry{}).Order("id").Pluck("email", &emails).Error
	return emails, err
}
