package usecase

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestValidator(store *memStore) *BookingValidator {
	return NewBookingValidator(store.repository(), zap.NewNop())
}

func TestBookingValidator_Validate_ReserveEligible(t *testing.T) {
	store := newMemStore()
	store.addEligibleUser(1, entity.TicketStatusPaid)
	room := store.addRoom(3)
	store.addBooking(2, room.ID)

	got, err := newTestValidator(store).Validate(context.Background(), 1, room.ID, BookingModeReserve, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Enrollment.UserID)
	assert.Equal(t, entity.TicketStatusPaid, got.Ticket.Status)
	assert.Equal(t, room.ID, got.Room.ID)
	assert.Equal(t, 1, got.RoomBookings)
}

func TestBookingValidator_Validate_NoEnrollment(t *testing.T) {
	store := newMemStore()
	room := store.addRoom(1)

	_, err := newTestValidator(store).Validate(context.Background(), 1, room.ID, BookingModeReserve, nil)

	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingValidator_Validate_TicketRules(t *testing.T) {
	tests := []struct {
		name          string
		noTicket      bool
		status        entity.TicketStatus
		includesHotel bool
		isRemote      bool
		mode          BookingMode
		wantErr       error
	}{
		{name: "reserve paid with hotel", status: entity.TicketStatusPaid, includesHotel: true, mode: BookingModeReserve},
		{name: "reserve without ticket", noTicket: true, mode: BookingModeReserve, wantErr: ErrTicketNotEligible},
		{name: "reserve without hotel", status: entity.TicketStatusPaid, mode: BookingModeReserve, wantErr: ErrTicketNotEligible},
		{name: "reserve remote", status: entity.TicketStatusPaid, includesHotel: true, isRemote: true, mode: BookingModeReserve, wantErr: ErrTicketNotEligible},
		{name: "reserve with reserved ticket", status: entity.TicketStatusReserved, includesHotel: true, mode: BookingModeReserve, wantErr: ErrTicketNotEligible},
		{name: "change with reserved ticket", status: entity.TicketStatusReserved, includesHotel: true, mode: BookingModeChange},
		{name: "change with paid ticket", status: entity.TicketStatusPaid, includesHotel: true, mode: BookingModeChange, wantErr: ErrTicketNotEligible},
		{name: "change remote", status: entity.TicketStatusReserved, includesHotel: true, isRemote: true, mode: BookingModeChange, wantErr: ErrTicketNotEligible},
		{name: "change without hotel", status: entity.TicketStatusReserved, mode: BookingModeChange, wantErr: ErrTicketNotEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			enrollment := store.addEnrollment(1)
			if !tt.noTicket {
				store.addTicket(enrollment, tt.status, tt.includesHotel, tt.isRemote)
			}
			room := store.addRoom(2)

			_, err := newTestValidator(store).Validate(context.Background(), 1, room.ID, tt.mode, nil)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestBookingValidator_Validate_RoomNotFound(t *testing.T) {
	store := newMemStore()
	store.addEligibleUser(1, entity.TicketStatusPaid)

	_, err := newTestValidator(store).Validate(context.Background(), 1, 999, BookingModeReserve, nil)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestBookingValidator_Validate_TicketCheckedBeforeRoom(t *testing.T) {
	store := newMemStore()
	store.addEligibleUser(1, entity.TicketStatusReserved)

	_, err := newTestValidator(store).Validate(context.Background(), 1, 999, BookingModeReserve, nil)

	assert.ErrorIs(t, err, ErrTicketNotEligible)
}

func TestBookingValidator_Validate_Capacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		existing int
		wantErr  error
	}{
		{name: "empty room", capacity: 1, existing: 0},
		{name: "one place left", capacity: 4, existing: 3},
		{name: "full", capacity: 4, existing: 4, wantErr: ErrRoomFull},
		{name: "over capacity", capacity: 2, existing: 3, wantErr: ErrRoomFull},
		{name: "zero capacity", capacity: 0, existing: 0, wantErr: ErrRoomFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.addEligibleUser(1, entity.TicketStatusPaid)
			room := store.addRoom(tt.capacity)
			for i := 0; i < tt.existing; i++ {
				store.addBooking(10+i, room.ID)
			}

			_, err := newTestValidator(store).Validate(context.Background(), 1, room.ID, BookingModeReserve, nil)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingValidator_Validate_ChangeIntoOwnFullRoom(t *testing.T) {
	store := newMemStore()
	store.addEligibleUser(1, entity.TicketStatusReserved)
	room := store.addRoom(2)
	current := store.addBooking(1, room.ID)
	store.addBooking(2, room.ID)

	got, err := newTestValidator(store).Validate(context.Background(), 1, room.ID, BookingModeChange, current)

	require.NoError(t, err)
	assert.Equal(t, 1, got.RoomBookings)
}

func TestBookingValidator_Validate_ChangeIntoOtherFullRoom(t *testing.T) {
	store := newMemStore()
	store.addEligibleUser(1, entity.TicketStatusReserved)
	from := store.addRoom(2)
	to := store.addRoom(1)
	current := store.addBooking(1, from.ID)
	store.addBooking(2, to.ID)

	_, err := newTestValidator(store).Validate(context.Background(), 1, to.ID, BookingModeChange, current)

	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestBookingValidator_Validate_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.addEligibleUser(1, entity.TicketStatusPaid)
	room := store.addRoom(1)
	dbErr := errors.New("connection reset")
	store.err = dbErr

	_, err := newTestValidator(store).Validate(context.Background(), 1, room.ID, BookingModeReserve, nil)

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, "error", outcome(err))
}

func TestBookingValidator_Validate_OnlyReads(t *testing.T) {
	store := newMemStore()
	store.addEligibleUser(1, entity.TicketStatusPaid)
	room := store.addRoom(1)

	_, err := newTestValidator(store).Validate(context.Background(), 1, room.ID, BookingModeReserve, nil)

	require.NoError(t, err)
	assert.Empty(t, store.bookings)
	assert.Equal(t, 4, store.calls)
}

func TestBookingMode_String(t *testing.T) {
	assert.Equal(t, "reserve", BookingModeReserve.String())
	assert.Equal(t, "change", BookingModeChange.String())
}
