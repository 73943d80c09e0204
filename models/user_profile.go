package models

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleClient Role = "client"
)

// UserProfile owns its hotels, bookings, reviews and favourites; deleting a
// user cascades over all of them. The password column holds a bcrypt hash and
// is never serialized.
type UserProfile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"column:first_name;size:32" json:"first_name"`
	LastName    string    `gorm:"column:last_name;size:32" json:"last_name"`
	UserName    string    `gorm:"column:user_name;size:64;uniqueIndex" json:"user_name"`
	Email       string    `gorm:"column:email;size:128;uniqueIndex" json:"email"`
	Age         *int      `gorm:"column:age" json:"age,omitempty"`
	PhoneNumber *string   `gorm:"column:phone_number;size:32" json:"phone_number,omitempty"`
	Role        Role      `gorm:"column:role;size:16;default:client" json:"role"`
	CreatedDate time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
	Password    string    `gorm:"column:password" json:"-"`

	Hotels     []Hotel     `gorm:"foreignKey:OwnerID" json:"-"`
	Bookings   []Booking   `gorm:"foreignKey:UserID" json:"-"`
	Reviews    []Review    `gorm:"foreignKey:UserID" json:"-"`
	Favourites []Favourite `gorm:"foreignKey:UserID" json:"-"`
}

func (UserProfile) TableName() string { return "userprofile" }
