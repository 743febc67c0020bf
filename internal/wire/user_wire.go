package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /users - register an account (public)
	r.Post("/users", authHandler.SignUp)
}
