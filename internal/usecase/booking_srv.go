package usecase

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type BookingService interface {
	GetBooking(ctx context.Context, userID int) (*entity.Booking, error)
	ReserveRoom(ctx context.Context, userID, roomID int) (*entity.Booking, error)
	ChangeRoom(ctx context.Context, userID, roomID int) (*entity.Booking, error)
}

type bookingService struct {
	repo      *repository.Repository
	validator *BookingValidator
	tracer    trace.Tracer
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		validator: NewBookingValidator(repo, log),
		tracer:    otel.Tracer("hotel-booking/usecase"),
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBooking(ctx context.Context, userID int) (booking *entity.Booking, err error) {
	ctx, finish := s.start(ctx, "get", userID, 0)
	defer func() { finish(err) }()

	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	booking, err = s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return booking, nil
}

func (s *bookingService) ReserveRoom(ctx context.Context, userID, roomID int) (booking *entity.Booking, err error) {
	ctx, finish := s.start(ctx, "reserve", userID, roomID)
	defer func() { finish(err) }()

	if roomID <= 0 {
		return nil, ErrInvalidRoomID
	}

	eligibility, err := s.validator.Validate(ctx, userID, roomID, BookingModeReserve, nil)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyBooked
	}

	booking = &entity.Booking{
		UserID: userID,
		RoomID: roomID,
		Room:   eligibility.Room,
	}
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, mapWriteError(err)
	}

	s.log.Info("Booking created",
		zap.Int("booking_id", booking.ID),
		zap.Int("user_id", userID),
		zap.Int("room_id", roomID),
		zap.Int("room_bookings", eligibility.RoomBookings+1),
		zap.Int("room_capacity", eligibility.Room.Capacity),
	)

	return booking, nil
}

func (s *bookingService) ChangeRoom(ctx context.Context, userID, roomID int) (booking *entity.Booking, err error) {
	ctx, finish := s.start(ctx, "change", userID, roomID)
	defer func() { finish(err) }()

	if roomID <= 0 {
		return nil, ErrInvalidRoomID
	}

	current, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if current == nil {
		return nil, ErrBookingNotFound
	}

	eligibility, err := s.validator.Validate(ctx, userID, roomID, BookingModeChange, current)
	if err != nil {
		return nil, err
	}

	booking, err = s.repo.Booking.UpdateRoom(ctx, current.ID, roomID)
	if err != nil {
		return nil, mapWriteError(err)
	}
	booking.Room = eligibility.Room

	s.log.Info("Booking room changed",
		zap.Int("booking_id", booking.ID),
		zap.Int("user_id", userID),
		zap.Int("from_room_id", current.RoomID),
		zap.Int("to_room_id", roomID),
	)

	return booking, nil
}

// mapWriteError translates failures of the guarded writes. Between validation and
// the write the room can fill up or disappear, and a concurrent reserve can book the user.
func mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrRoomCapacityExceeded):
		return ErrRoomFull
	case errors.Is(err, repository.ErrRoomMissing):
		return ErrRoomNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrAlreadyBooked
	default:
		return fmt.Errorf("persist booking: %w", err)
	}
}

// start opens a span for operation and returns the function that records its result.
func (s *bookingService) start(ctx context.Context, operation string, userID, roomID int) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "booking."+operation, trace.WithAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("room.id", roomID),
	))

	return ctx, func(err error) {
		result := outcome(err)
		metrics.BookingOperations.WithLabelValues(operation, result).Inc()

		if err != nil {
			span.RecordError(err)
			if result == "error" {
				span.SetStatus(codes.Error, err.Error())
				s.log.Error("Booking operation failed",
					zap.String("operation", operation),
					zap.Int("user_id", userID),
					zap.Int("room_id", roomID),
					zap.Error(err),
				)
			} else {
				s.log.Warn("Booking operation rejected",
					zap.String("operation", operation),
					zap.Int("user_id", userID),
					zap.Int("room_id", roomID),
					zap.Error(err),
				)
			}
		}
		span.End()
	}
}
