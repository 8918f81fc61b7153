package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is a hotel guest account. Email is the business key used for login;
// uniqueness is enforced by the signup pre-check, not by the database.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Username string `gorm:"size:150" json:"username"`
	Email    string `gorm:"size:255;index" json:"email"`
	// store hashed password, never return in JSON
	Password         string                      `gorm:"size:255" json:"-"`
	TotalBookedRooms datatypes.JSONSlice[string] `gorm:"column:total_booked_rooms" json:"total_booked_rooms"`
	IsAdmin          bool                        `gorm:"column:is_admin;default:false" json:"is_admin"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Username == "" {
		u.Username = "user"
	}
	if u.TotalBookedRooms == nil {
		u.TotalBookedRooms = datatypes.JSONSlice[string]{}
	}
	return nil
}

// HasBookedRoom reports whether roomID is already in the user's booked list.
func (u *User) HasBookedRoom(roomID string) bool {
	for _, id := range u.TotalBookedRooms {
		if id == roomID {
			return true
		}
	}
	return false
}
