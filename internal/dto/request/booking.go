package request

// BookingRoomRequest is the body of both POST /booking and PUT /booking/{bookingId}.
type BookingRoomRequest struct {
	RoomID int `json:"roomId" validate:"required,gt=0"`
}
