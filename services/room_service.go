package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-management/models"
)

// RoomService is the store for rooms.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// Create inserts a room after an advisory duplicate check on room_number. On
// a duplicate the existing record is returned with ErrDuplicateRoomNumber.
// BookedBy is never taken from input; a room starts with no booking user.
func (s *RoomService) Create(room models.Room) (models.Room, error) {
	existing, err := s.GetByRoomNumber(room.RoomNumber)
	if err == nil {
		return existing, ErrDuplicateRoomNumber
	}
	if !errors.Is(err, ErrRoomNotFound) {
		return models.Room{}, err
	}

	room.ID = ""
	room.BookedBy = nil

	if err := s.DB.Create(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *RoomService) GetByID(id string) (models.Room, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Room{}, ErrMalformedID
	}
	var room models.Room
	if err := s.DB.Where("id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("failed to fetch room: %w", err)
	}
	return room, nil
}

func (s *RoomService) GetByRoomNumber(roomNumber uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("failed to fetch room: %w", err)
	}
	return room, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	return rooms, nil
}
