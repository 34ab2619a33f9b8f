package entity

import "github.com/shopspring/decimal"

type Product struct {
	Base
	ProductName string          `gorm:"not null" json:"productName"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Images      []string        `gorm:"serializer:json" json:"image"` // public URLs from the image store

	OrderItems []OrderItem `json:"-"`
}
