package wire

import (
	"course-enrollment/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth authMiddleware) {
	// ==================== PROTECTED USER ROUTES ====================
	r.With(auth).Get("/api/users/me", userHandler.GetProfile)
}
