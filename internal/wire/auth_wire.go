package wire

import (
	"ticket-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /user/ - register a new user (public)
	r.Post("/user/", authHandler.Register)

	// POST /user/login/ - authenticate, returns a refresh token (public)
	r.Post("/user/login/", authHandler.Login)
}
