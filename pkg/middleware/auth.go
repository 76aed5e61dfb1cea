package middleware

import (
	"net/http"
	"strings"

	"course-enrollment/pkg/security"
	"course-enrollment/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. It returns "" when there is none.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AuthJWT rejects requests without a bearer token (401) or with a token that
// fails verification (403). Otherwise the user id is put on the request
// context.
func AuthJWT(tokens security.TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				utils.ResponseUnauthorized(w, "Access denied. No token provided")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				logger.Warn("Rejected token",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				utils.ResponseForbidden(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetUserContext(r.Context(), userID)))
		})
	}
}
