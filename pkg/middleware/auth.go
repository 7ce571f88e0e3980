package middleware

import (
	"net/http"
	"strings"

	"naryn-restaurants/pkg/utils"

	"go.uber.org/zap"
)

// Auth middleware untuk validasi bearer JWT.
// Header absen/salah format -> 403, token invalid/expired -> 401.
func Auth(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.ResponseForbidden(w, "Access denied")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := utils.VerifyToken(token, jwtConfig)
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Set context dengan user info dari claims
			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
