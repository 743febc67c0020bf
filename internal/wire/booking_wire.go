package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// All booking routes act on the authenticated user's own booking
	r.Route("/booking", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.JWT.Secret, log))

		// GET /booking - the caller's booking with its room
		r.Get("/", bookingHandler.GetBooking)

		// POST /booking - reserve a room
		r.Post("/", bookingHandler.ReserveRoom)

		// PUT /booking/{bookingId} - move the caller's booking to another room
		r.Put("/{bookingId}", bookingHandler.ChangeRoom)
	})
}
