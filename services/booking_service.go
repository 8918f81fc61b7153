package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-management/models"
)

// BookingService coordinates the two-collection book/cancel workflow across
// the rooms and users tables.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingResult carries both updated records back to the handler. On
// ErrRoomAlreadyBooked / ErrRoomNotBooked only Room is populated, with the
// current record for caller context.
type BookingResult struct {
	Room models.Room
	User models.User
}

// Book marks the room booked by the user and records the room id on the
// user. Both writes run in one transaction; the room flip is a guarded
// update (WHERE is_booked = false) so two concurrent bookings of the same
// room cannot both commit. The user is validated before either record is
// mutated, and the room-id append is a set union, never a double append.
func (s *BookingService) Book(userID string, roomNumber uint) (BookingResult, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return BookingResult{}, ErrMalformedID
	}

	var result BookingResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to fetch room: %w", err)
		}
		if room.IsBooked {
			result.Room = room
			return ErrRoomAlreadyBooked
		}

		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to fetch user: %w", err)
		}

		if !user.HasBookedRoom(room.ID) {
			user.TotalBookedRooms = append(user.TotalBookedRooms, room.ID)
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("total_booked_rooms", user.TotalBookedRooms).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		flip := tx.Model(&models.Room{}).
			Where("id = ? AND is_booked = ?", room.ID, false).
			Updates(map[string]interface{}{"is_booked": true, "booked_by": user.ID})
		if flip.Error != nil {
			return fmt.Errorf("failed to update room: %w", flip.Error)
		}
		if flip.RowsAffected == 0 {
			result.Room = room
			return ErrRoomAlreadyBooked
		}

		if err := tx.Where("id = ?", room.ID).First(&result.Room).Error; err != nil {
			return fmt.Errorf("failed to reload room: %w", err)
		}
		result.User = user
		return nil
	})
	return result, err
}

// Cancel is the mirror of Book: clears the room's booking and removes the
// room id from the user's list by exact match, in one transaction.
func (s *BookingService) Cancel(userID string, roomNumber uint) (BookingResult, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return BookingResult{}, ErrMalformedID
	}

	var result BookingResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to fetch room: %w", err)
		}
		if !room.IsBooked {
			result.Room = room
			return ErrRoomNotBooked
		}

		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to fetch user: %w", err)
		}

		kept := user.TotalBookedRooms[:0]
		for _, id := range user.TotalBookedRooms {
			if id != room.ID {
				kept = append(kept, id)
			}
		}
		user.TotalBookedRooms = kept
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("total_booked_rooms", user.TotalBookedRooms).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		release := tx.Model(&models.Room{}).
			Where("id = ? AND is_booked = ?", room.ID, true).
			Updates(map[string]interface{}{"is_booked": false, "booked_by": nil})
		if release.Error != nil {
			return fmt.Errorf("failed to update room: %w", release.Error)
		}
		if release.RowsAffected == 0 {
			result.Room = room
			return ErrRoomNotBooked
		}

		if err := tx.Where("id = ?", room.ID).First(&result.Room).Error; err != nil {
			return fmt.Errorf("failed to reload room: %w", err)
		}
		result.User = user
		return nil
	})
	return result, err
}
