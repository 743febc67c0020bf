package entity

// Room capacity is the maximum number of bookings it can hold at once.
type Room struct {
	Base
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	HotelID  int    `db:"hotel_id"`
}
