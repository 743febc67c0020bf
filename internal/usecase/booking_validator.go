package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"go.uber.org/zap"
)

// BookingMode selects which ticket status rule applies.
type BookingMode int

const (
	// BookingModeReserve is a first reservation: a RESERVED (unpaid) ticket is rejected.
	BookingModeReserve BookingMode = iota
	// BookingModeChange moves an existing booking: the ticket must still be RESERVED.
	BookingModeChange
)

func (m BookingMode) String() string {
	if m == BookingModeChange {
		return "change"
	}
	return "reserve"
}

// Eligibility is what a successful validation resolved.
type Eligibility struct {
	Enrollment   *entity.Enrollment
	Ticket       *entity.Ticket
	Room         *entity.Room
	RoomBookings int
}

// BookingValidator decides whether a user may put a booking in a room. It only reads.
type BookingValidator struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingValidator(repo *repository.Repository, log *zap.Logger) *BookingValidator {
	return &BookingValidator{
		repo: repo,
		log:  log.With(zap.String("component", "booking_validator")),
	}
}

// Validate runs the eligibility checks in order: enrollment, ticket, room, capacity.
// current is the user's existing booking in change mode and nil otherwise; when it
// already sits in roomID it is not counted against the capacity.
func (v *BookingValidator) Validate(ctx context.Context, userID, roomID int, mode BookingMode, current *entity.Booking) (*Eligibility, error) {
	enrollment, err := v.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	ticket, err := v.repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	if !ticketAllows(ticket, mode) {
		v.log.Debug("Ticket not eligible",
			zap.Int("user_id", userID),
			zap.Stringer("mode", mode),
		)
		return nil, ErrTicketNotEligible
	}

	room, err := v.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	count, err := v.repo.Booking.CountByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("count room bookings: %w", err)
	}
	if current != nil && current.RoomID == roomID && count > 0 {
		count--
	}
	if count >= room.Capacity {
		v.log.Debug("Room full",
			zap.Int("room_id", roomID),
			zap.Int("bookings", count),
			zap.Int("capacity", room.Capacity),
		)
		return nil, ErrRoomFull
	}

	return &Eligibility{
		Enrollment:   enrollment,
		Ticket:       ticket,
		Room:         room,
		RoomBookings: count,
	}, nil
}

func ticketAllows(ticket *entity.Ticket, mode BookingMode) bool {
	if ticket == nil || !ticket.TicketType.IncludesHotel || ticket.TicketType.IsRemote {
		return false
	}

	reserved := ticket.Status == entity.TicketStatusReserved
	if mode == BookingModeChange {
		return reserved
	}
	return !reserved
}
