package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// FindByUserID returns the user's booking with its Room populated.
	FindByUserID(ctx context.Context, userID int) (*entity.Booking, error)
	CountByRoomID(ctx context.Context, roomID int) (int, error)

	// Create and UpdateRoom re-check the room capacity under a row lock on the
	// room and fail with ErrRoomCapacityExceeded when it is already full.
	// Create fails with ErrDuplicate when the user already holds a booking.
	Create(ctx context.Context, booking *entity.Booking) error
	UpdateRoom(ctx context.Context, bookingID, roomID int) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int) (*entity.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
	`

	var booking entity.Booking
	var room entity.Room
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by user ID",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find booking by user ID %d: %w", userID, err)
	}

	booking.Room = &room
	return &booking, nil
}

func (r *bookingRepository) CountByRoomID(ctx context.Context, roomID int) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, roomID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by room ID",
			zap.Error(err),
			zap.Int("room_id", roomID),
		)
		return 0, fmt.Errorf("count bookings by room ID %d: %w", roomID, err)
	}

	return count, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.reserveCapacity(ctx, tx, booking.RoomID, 0); err != nil {
		return err
	}

	query := `INSERT INTO bookings (user_id, room_id) VALUES ($1, $2) RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, query, booking.UserID, booking.RoomID).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("create booking for user %d: %w", booking.UserID, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int("user_id", booking.UserID),
			zap.Int("room_id", booking.RoomID),
		)
		return fmt.Errorf("create booking for user %d: %w", booking.UserID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update booking: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.reserveCapacity(ctx, tx, roomID, bookingID); err != nil {
		return nil, err
	}

	query := `UPDATE bookings SET room_id = $2, updated_at = NOW() WHERE id = $1 RETURNING id, user_id, room_id, created_at, updated_at`

	var booking entity.Booking
	err = tx.QueryRow(ctx, query, bookingID, roomID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %d not found", bookingID)
	}
	if err != nil {
		r.log.Error("Failed to update booking room",
			zap.Error(err),
			zap.Int("booking_id", bookingID),
			zap.Int("room_id", roomID),
		)
		return nil, fmt.Errorf("update booking %d: %w", bookingID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update booking: %w", err)
	}

	return &booking, nil
}

// reserveCapacity locks the room row and verifies one more booking fits.
// excludeBookingID is left out of the count so a booking can stay in its own room.
func (r *bookingRepository) reserveCapacity(ctx context.Context, tx pgx.Tx, roomID, excludeBookingID int) error {
	var capacity int
	err := tx.QueryRow(ctx, `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&capacity)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("room %d: %w", roomID, ErrRoomMissing)
	}
	if err != nil {
		r.log.Error("Failed to lock room", zap.Error(err), zap.Int("room_id", roomID))
		return fmt.Errorf("lock room %d: %w", roomID, err)
	}

	var count int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND id <> $2`, roomID, excludeBookingID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count room bookings", zap.Error(err), zap.Int("room_id", roomID))
		return fmt.Errorf("count bookings in room %d: %w", roomID, err)
	}

	if count >= capacity {
		return fmt.Errorf("room %d (%d/%d): %w", roomID, count, capacity, ErrRoomCapacityExceeded)
	}

	return nil
}
