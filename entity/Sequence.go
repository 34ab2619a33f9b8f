package entity

// Sequence is a named counter row; value is the last number handed out.
type Sequence struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null"`
}

const (
	OrderNumberSeq   = "orderNumber"
	OrderNumberStart = 1000
)
