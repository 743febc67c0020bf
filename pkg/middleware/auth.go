package middleware

import (
	"net/http"
	"strings"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession accepts a request when its bearer token is a valid JWT that still
// belongs to a stored session, and puts the session's user id in the context.
func AuthSession(sessionRepo repository.SessionRepository, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			claims, err := utils.ParseSessionToken(token, secret)
			if err != nil {
				logger.Debug("Rejected token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			session, err := sessionRepo.FindByToken(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.Int("user_id", claims.UserID),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil || session.UserID != claims.UserID {
				logger.Warn("No session for token", zap.Int("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
