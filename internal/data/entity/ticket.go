package entity

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	Base
	Name          string `db:"name"`
	Price         int    `db:"price"`
	IsRemote      bool   `db:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel"`
}

type Ticket struct {
	Base
	TicketTypeID int          `db:"ticket_type_id"`
	EnrollmentID int          `db:"enrollment_id"`
	Status       TicketStatus `db:"status"`
	TicketType   TicketType   `db:"-"`
}
