package wire

import (
	"context"
	"net/http"
	"time"

	"course-enrollment/internal/adaptor"
	"course-enrollment/internal/data/repository"
	"course-enrollment/internal/usecase"
	"course-enrollment/pkg/middleware"
	"course-enrollment/pkg/security"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router *chi.Mux
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type authMiddleware = func(http.Handler) http.Handler

// Wiring builds services, handlers and routes. db may be nil, in which case
// the health check does not probe the database.
func Wiring(repo *repository.Repository, db Pinger, tokens *security.TokenService, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)
	auth := middleware.AuthJWT(tokens, logger.With(zap.String("middleware", "auth")))

	return &App{
		Router: setupRouter(handler, auth, db, logger),
	}
}

func setupRouter(handler *adaptor.Handler, auth authMiddleware, db Pinger, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, auth)
	wireCourse(r, handler.Course, auth)
	wireEnrollment(r, handler.Enrollment, auth)
	wireReview(r, handler.Review)

	r.Get("/health", healthCheck(db, logger))

	return r
}

func healthCheck(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logger.Error("Health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("database unavailable"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
