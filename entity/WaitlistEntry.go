package entity

type WaitlistEntry struct {
	Base
	FullName    string  `gorm:"not null" json:"fullName"`
	Email       string  `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber *string `gorm:"uniqueIndex" json:"phoneNumber,omitempty"`
}
