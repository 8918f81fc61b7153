package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room is a bookable hotel room. RoomNumber is the business key; BookedBy is
// set exactly when IsBooked is true and holds the booking user's id.
type Room struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	RoomNumber  uint      `gorm:"column:room_number;index" json:"room_number"`
	Description string    `gorm:"type:text" json:"description"`
	RoomType    string    `gorm:"column:room_type;size:100" json:"room_type"`
	Capacity    int       `json:"capacity"`
	Price       int       `json:"price"`
	BookedBy    *string   `gorm:"column:booked_by;size:36" json:"booked_by"`
	IsBooked    bool      `gorm:"column:is_booked;default:false" json:"is_booked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
