package entity

type Booking struct {
	Base
	UserID int   `db:"user_id"`
	RoomID int   `db:"room_id"`
	Room   *Room `db:"-"`
}
