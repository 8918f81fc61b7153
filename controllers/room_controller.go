package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"
)

type createRoomPayload struct {
	RoomNumber  uint   `json:"room_number" binding:"required"`
	Description string `json:"description" binding:"required"`
	RoomType    string `json:"room_type" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Price       int    `json:"price" binding:"required,gt=0"`
	IsBooked    bool   `json:"is_booked"`
}

// bookingPayload is shared by book and cancel: the acting user plus the
// room's business key.
type bookingPayload struct {
	BookedBy   string `json:"booked_by" binding:"required"`
	RoomNumber uint   `json:"room_number" binding:"required"`
}

type RoomController struct {
	Rooms    *services.RoomService
	Users    *services.UserService
	Bookings *services.BookingService
}

func NewRoomController(rooms *services.RoomService, users *services.UserService, bookings *services.BookingService) *RoomController {
	return &RoomController{Rooms: rooms, Users: users, Bookings: bookings}
}

func (ctrl *RoomController) Create(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", nil, err.Error())
		return
	}

	room, err := ctrl.Rooms.Create(models.Room{
		RoomNumber:  payload.RoomNumber,
		Description: payload.Description,
		RoomType:    payload.RoomType,
		Capacity:    payload.Capacity,
		Price:       payload.Price,
		IsBooked:    payload.IsBooked,
	})
	switch {
	case errors.Is(err, services.ErrDuplicateRoomNumber):
		utils.JSONError(c, http.StatusConflict, "Room number already exists", room, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error creating room", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusCreated, "Room created successfully", gin.H{"inserted_id": room.ID})
	}
}

func (ctrl *RoomController) GetByRoomNumber(c *gin.Context) {
	n, err := strconv.ParseUint(c.Param("room_number"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room number", nil, "")
		return
	}

	room, err := ctrl.Rooms.GetByRoomNumber(uint(n))
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "Room not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching room", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "Room details", room)
	}
}

// GetByID returns the room and, when it is booked, resolves the booking user
// into the response.
func (ctrl *RoomController) GetByID(c *gin.Context) {
	room, err := ctrl.Rooms.GetByID(c.Param("id"))
	switch {
	case errors.Is(err, services.ErrMalformedID):
		utils.JSONError(c, http.StatusBadRequest, "Malformed id", nil, "")
		return
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "Room not found", nil, "")
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching room", nil, err.Error())
		return
	}

	if room.IsBooked && room.BookedBy != nil {
		user, err := ctrl.Users.GetByID(*room.BookedBy)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Error fetching booking user", nil, err.Error())
			return
		}
		utils.JSONSuccess(c, http.StatusOK, "Room details", gin.H{"room": room, "booked_by": user})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room details", gin.H{"room": room})
}

func (ctrl *RoomController) GetAll(c *gin.Context) {
	rooms, err := ctrl.Rooms.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching rooms", nil, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Fetched all rooms", rooms)
}

func (ctrl *RoomController) Book(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", nil, err.Error())
		return
	}

	result, err := ctrl.Bookings.Book(payload.BookedBy, payload.RoomNumber)
	switch {
	case errors.Is(err, services.ErrMalformedID):
		utils.JSONError(c, http.StatusBadRequest, "Malformed user id", nil, "")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "Room not found", nil, "")
	case errors.Is(err, services.ErrRoomAlreadyBooked):
		utils.JSONError(c, http.StatusConflict, "Room is already booked", result.Room, "")
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error booking room", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "Room booked successfully", gin.H{
			"booked_by":            result.User,
			"updated_room_details": result.Room,
		})
	}
}

func (ctrl *RoomController) CancelBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", nil, err.Error())
		return
	}

	result, err := ctrl.Bookings.Cancel(payload.BookedBy, payload.RoomNumber)
	switch {
	case errors.Is(err, services.ErrMalformedID):
		utils.JSONError(c, http.StatusBadRequest, "Malformed user id", nil, "")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "Room not found", nil, "")
	case errors.Is(err, services.ErrRoomNotBooked):
		utils.JSONError(c, http.StatusConflict, "Room is not booked", result.Room, "")
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error canceling booking", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "Booking canceled successfully", gin.H{
			"canceled_by":          result.User,
			"updated_room_details": result.Room,
		})
	}
}
