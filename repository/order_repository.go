package repository

import (
	"context"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

// POST /order/create-order → สร้าง order พร้อม items (ต้องอยู่ใน tx)
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// เอา product พื้นฐาน (id, price) ใน tx เดียวกับการสร้าง order
func (r *OrderRepository) GetProductBasics(tx *gorm.DB, id uint) (entity.Product, error) {
	var p entity.Product
	err := tx.Select("id", "price").First(&p, id).Error
	return p, err
}

func (r *OrderRepository) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// โหลด order พร้อม buyer (ไม่มี password) สำหรับส่งเมล
func (r *OrderRepository) GetOrderWithBuyer(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("User", selectContact).
		Preload("Items").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// PUT /order/status/:id (ตรวจว่ามี order ก่อนเรียก)
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) error {
	return r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ---------------- Listing ----------------

func selectContact(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Select("id", "full_name", "email", "phone_number")
}

// สินค้าที่ถูกลบไปแล้วยังต้องแสดงใน order เก่า
func preloadProducts(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Select("id", "product_name", "price", "images")
}

// GET /order/all-order (admin) ใหม่สุดก่อน
func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).
		Preload("User", selectContact).
		Preload("Items").
		Preload("Items.Product", preloadProducts).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// GET /order/my-orders
func (r *OrderRepository) ListForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product", preloadProducts).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// ---------------- Dashboard ----------------

func (r *OrderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *OrderRepository) Recent(ctx context.Context, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).
		Select("id", "order_number", "created_at").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// OrderRow is one line of the CLI orders table.
type OrderRow struct {
	OrderNumber int64
	Buyer       string
	Status      entity.OrderStatus
	Method      entity.PaymentMethod
	Total       string
	CreatedAt   string
}

func (r *OrderRepository) RecentRows(ctx context.Context, limit int) ([]OrderRow, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).
		Preload("User", selectContact).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	out := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		buyer := ""
		if o.User != nil {
			buyer = o.User.FullName
		}
		out = append(out, OrderRow{
			OrderNumber: o.OrderNumber,
			Buyer:       buyer,
			Status:      o.Status,
			Method:      o.Payment.Method,
			Total:       o.TotalAmount.StringFixed(2),
			CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return out, nil
}
