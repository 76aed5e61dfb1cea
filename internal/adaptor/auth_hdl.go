package adaptor

import (
	"net/http"

	"course-enrollment/internal/dto/request"
	"course-enrollment/internal/usecase"
	"course-enrollment/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/users/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !utils.BindJSON(w, r, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "User registered successfully", "user", user)
}

// Login handles POST /api/users/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !utils.BindJSON(w, r, &req) {
		return
	}

	login, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, utils.Response{
		"status":     true,
		"message":    "Login successful",
		"token":      login.Token,
		"expires_at": login.ExpiresAt,
	})
}
