package repository

import (
	"errors"

	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrRoomCapacityExceeded is returned by the guarded booking writes when the
	// target room has no free place left at commit time.
	ErrRoomCapacityExceeded = errors.New("room capacity exceeded")
	// ErrRoomMissing is returned by the guarded booking writes when the target room is gone.
	ErrRoomMissing = errors.New("room does not exist")
)

const uniqueViolation = "23505"

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Enrollment EnrollmentRepository
	Ticket     TicketRepository
	Room       RoomRepository
	Booking    BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Enrollment: NewEnrollmentRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		Room:       NewRoomRepository(db, log),
		Booking:    NewBookingRepository(db, log),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
