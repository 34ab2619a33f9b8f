package repository

import (
	"context"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"gorm.io/gorm"
)

// UserRepository รับผิดชอบการคุยกับตาราง users ใน DB เท่านั้น
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// columns ที่ปลอดภัยจะส่งออก (ไม่มี password)
var publicUserColumns = []string{"id", "created_at", "updated_at", "full_name", "email", "phone_number", "role", "avatar"}

// หาผู้ใช้จาก email (รวม password hash สำหรับ login)
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailOrPhone returns users already holding the email or the phone.
func (r *UserRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.WithContext(ctx).
		Select("id", "email", "phone_number").
		Where("email = ? OR phone_number = ?", email, phone).
		Limit(2).
		Find(&users).Error
	return users, err
}

// สร้าง user ใหม่
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// โหลด user ตาม ID โดยไม่ดึง password
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Select(publicUserColumns).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// รายชื่อตาม role ใหม่สุดก่อน
func (r *UserRepository) ListByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.WithContext(ctx).
		Select(publicUserColumns).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) CountCreatedBetween(ctx context.Context, role entity.Role, from, to time.Time) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.User{}).
		Where("role = ? AND created_at >= ? AND created_at < ?", role, from, to).
		Count(&n).Error
	return n, err
}

func (r *UserRepository) Recent(ctx context.Context, limit int) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.WithContext(ctx).
		Select("id", "full_name", "created_at").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
