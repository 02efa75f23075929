package domain

import "time"

type User struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Username       string    `gorm:"size:64;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash   string    `gorm:"size:100;not null" json:"-"`
	Role           Role      `gorm:"not null" json:"role"` // 1..4, fixed after registration
	FirstName      *string   `gorm:"size:64" json:"firstName"`
	LastName       *string   `gorm:"size:64" json:"lastName"`
	ProfilePicture string    `gorm:"size:191" json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserRepository is the persistence surface the handlers and the
// session-refresh middleware depend on. There is no delete operation:
// accounts are never removed by the application itself.
type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
}
