package services

import "errors"

// Error taxonomy shared by the stores and the booking workflow. Controllers
// match these with errors.Is and map them to HTTP statuses; anything else is
// treated as a store error and passed through in the envelope's error field.
var (
	ErrMalformedID = errors.New("malformed id")

	ErrUserNotFound = errors.New("user not found")
	ErrRoomNotFound = errors.New("room not found")
	ErrItemNotFound = errors.New("item not found")

	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrDuplicateItemName   = errors.New("item name already exists")

	ErrRoomAlreadyBooked = errors.New("room is already booked")
	ErrRoomNotBooked     = errors.New("room is not booked")

	ErrInvalidCredentials = errors.New("invalid password")
)
