package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"course-enrollment/internal/data/entity"
	"course-enrollment/internal/data/repository"
	"course-enrollment/internal/dto/request"
	"course-enrollment/internal/dto/response"
	"course-enrollment/pkg/security"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if err := validate(s.log, "Register", req); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)

	// 2. Fast path for duplicate emails; the unique index is the real guard
	existingUser, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		s.log.Warn("Registration with existing email", zap.String("email", email))
		return nil, ErrUserExists
	}

	// 3. Hash password
	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("process password: %w", err)
	}

	// 4. Save user
	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warn("Registration lost race on email", zap.String("email", email))
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate
	if err := validate(s.log, "Login", req); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)

	// 2. Find user. Unknown email and wrong password fail the same way.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Issue token
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
