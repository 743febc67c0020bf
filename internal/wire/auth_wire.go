package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /auth/sign-in - issue a session token (public)
	r.Post("/auth/sign-in", authHandler.SignIn)
}
