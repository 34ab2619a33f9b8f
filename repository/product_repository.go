package repository

import (
	"context"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ดึงสินค้าทั้งหมด ใหม่สุดก่อน
func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

// ดึงสินค้าเดียว
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// สร้างสินค้าใหม่
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// อัปเดตสินค้า
func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

// ลบหลายรายการ (soft delete) คืนจำนวนที่ลบได้จริง
func (r *ProductRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).Where("id IN ?", ids).Delete(&entity.Product{})
	return res.RowsAffected, res.Error
}
