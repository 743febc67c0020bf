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

type TicketRepository interface {
	// FindByEnrollmentID returns the ticket with its TicketType populated.
	FindByEnrollmentID(ctx context.Context, enrollmentID int) (*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int) (*entity.Ticket, error) {
	query := `
		SELECT t.id, t.ticket_type_id, t.enrollment_id, t.status::text, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.TicketTypeID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.Price,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
		&ticket.TicketType.CreatedAt,
		&ticket.TicketType.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by enrollment ID",
			zap.Error(err),
			zap.Int("enrollment_id", enrollmentID),
		)
		return nil, fmt.Errorf("find ticket by enrollment ID %d: %w", enrollmentID, err)
	}

	return &ticket, nil
}
