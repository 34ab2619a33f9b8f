package repository

import (
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"gorm.io/gorm"
)

// SequenceRepository hands out numbers from named counters.
type SequenceRepository struct {
	DB *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{DB: db}
}

// Next increments the counter and returns the new value. tx must be the
// caller's transaction so the number commits or rolls back with the row that
// uses it.
func (r *SequenceRepository) Next(tx *gorm.DB, name string) (int64, error) {
	res := tx.Model(&entity.Sequence{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var seq entity.Sequence
	if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}
