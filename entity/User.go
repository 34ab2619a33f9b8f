package entity

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	Base
	FullName    string `gorm:"not null" json:"fullName"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Password    string `gorm:"not null" json:"-"` // bcrypt hash
	Role        Role   `gorm:"type:varchar(16);not null;default:User" json:"role"`
	Avatar      string `json:"avatar,omitempty"`

	Orders []Order `json:"-"`
}

// Contact is the buyer projection used in order listings.
type Contact struct {
	ID          uint   `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (u User) Contact() Contact {
	return Contact{ID: u.ID, FullName: u.FullName, Email: u.Email, PhoneNumber: u.PhoneNumber}
}
