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

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID int) (*entity.Enrollment, error)
}

type enrollmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnrollmentRepository(db database.PgxIface, log *zap.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "enrollment")),
	}
}

func (r *enrollmentRepository) FindByUserID(ctx context.Context, userID int) (*entity.Enrollment, error) {
	query := `
		SELECT id, name, cpf, birthday, phone, user_id, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1
	`

	var enrollment entity.Enrollment
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&enrollment.ID,
		&enrollment.Name,
		&enrollment.CPF,
		&enrollment.Birthday,
		&enrollment.Phone,
		&enrollment.UserID,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find enrollment by user ID",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find enrollment by user ID %d: %w", userID, err)
	}

	return &enrollment, nil
}
