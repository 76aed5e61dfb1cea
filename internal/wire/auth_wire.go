package wire

import (
	"course-enrollment/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/users/register", authHandler.Register)
	r.Post("/api/users/login", authHandler.Login)
}
