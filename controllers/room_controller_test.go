package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-management/models"
)

func createRoomBody(n uint) map[string]interface{} {
	return map[string]interface{}{
		"room_number": n,
		"description": "Sea view double",
		"room_type":   "Deluxe",
		"capacity":    2,
		"price":       250,
	}
}

func TestRoomCreateEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/room/create", createRoomBody(101))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	w, env = s.do(t, http.MethodPost, "/room/create", createRoomBody(101))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Room number already exists", env.Message)

	var existing models.Room
	require.NoError(t, json.Unmarshal(env.Data, &existing))
	assert.Equal(t, uint(101), existing.RoomNumber)
}

func TestRoomCreateValidation(t *testing.T) {
	s := newTestServer(t)

	body := createRoomBody(101)
	body["price"] = 0
	w, env := s.do(t, http.MethodPost, "/room/create", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestRoomGetByBadRoomNumber(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/room/room_number/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestBookAndCancelEndpoints(t *testing.T) {
	s := newTestServer(t)

	user, err := s.users.Signup(models.User{Email: "guest@example.com", Password: "pw123456"})
	require.NoError(t, err)
	_, env := s.do(t, http.MethodPost, "/room/create", createRoomBody(101))
	require.True(t, env.Success)

	w, env := s.do(t, http.MethodPut, "/room/book", map[string]interface{}{
		"booked_by": user.ID, "room_number": 101,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var booked struct {
		BookedBy models.User `json:"booked_by"`
		Room     models.Room `json:"updated_room_details"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booked))
	assert.Equal(t, user.ID, booked.BookedBy.ID)
	assert.True(t, booked.Room.IsBooked)
	require.NotNil(t, booked.Room.BookedBy)
	assert.Equal(t, user.ID, *booked.Room.BookedBy)

	// booking an already-booked room is a conflict carrying the room record
	w, env = s.do(t, http.MethodPut, "/room/book", map[string]interface{}{
		"booked_by": user.ID, "room_number": 101,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Room is already booked", env.Message)
	assert.NotEmpty(t, env.Data)

	w, env = s.do(t, http.MethodPut, "/room/cancel_booking", map[string]interface{}{
		"booked_by": user.ID, "room_number": 101,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var canceled struct {
		CanceledBy models.User `json:"canceled_by"`
		Room       models.Room `json:"updated_room_details"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &canceled))
	assert.False(t, canceled.Room.IsBooked)
	assert.Nil(t, canceled.Room.BookedBy)

	w, env = s.do(t, http.MethodPut, "/room/cancel_booking", map[string]interface{}{
		"booked_by": user.ID, "room_number": 101,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Room is not booked", env.Message)
}

func TestRoomGetByIDResolvesBookingUser(t *testing.T) {
	s := newTestServer(t)

	user, err := s.users.Signup(models.User{Email: "guest@example.com", Password: "pw123456"})
	require.NoError(t, err)
	room, err := s.rooms.Create(models.Room{
		RoomNumber: 101, Description: "Sea view", RoomType: "Deluxe", Capacity: 2, Price: 250,
	})
	require.NoError(t, err)

	type roomDetails struct {
		Room     models.Room  `json:"room"`
		BookedBy *models.User `json:"booked_by"`
	}

	w, env := s.do(t, http.MethodGet, "/room/id/"+room.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var plain roomDetails
	require.NoError(t, json.Unmarshal(env.Data, &plain))
	assert.False(t, plain.Room.IsBooked)
	assert.Nil(t, plain.BookedBy, "no booking user resolved for an unbooked room")

	_, err = s.bookings.Book(user.ID, 101)
	require.NoError(t, err)

	w, env = s.do(t, http.MethodGet, "/room/id/"+room.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var enriched roomDetails
	require.NoError(t, json.Unmarshal(env.Data, &enriched))
	assert.True(t, enriched.Room.IsBooked)
	require.NotNil(t, enriched.BookedBy)
	assert.Equal(t, user.ID, enriched.BookedBy.ID)
}
