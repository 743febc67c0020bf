package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int       `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingResponse is the body of GET /booking. The capitalised Room key is part of the public contract.
type BookingResponse struct {
	ID   int           `json:"id"`
	Room *RoomResponse `json:"Room"`
}

type BookingIDResponse struct {
	BookingID int `json:"bookingId"`
}

// Helper converters
func RoomToResponse(room *entity.Room) *RoomResponse {
	if room == nil {
		return nil
	}
	return &RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		HotelID:   room.HotelID,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:   booking.ID,
		Room: RoomToResponse(booking.Room),
	}
}
