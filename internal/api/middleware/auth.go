package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/asavich/GymClub-BookingService/internal/api/handlers"
	"github.com/asavich/GymClub-BookingService/internal/service/adminauth"
)

// TokenParser интерфейс проверки администраторского токена
type TokenParser interface {
	ParseToken(tokenString string) (*adminauth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет администраторский токен в заголовке Authorization.
// Ожидается формат "Bearer <token>". Запросы без валидного токена получают 401.
func AdminAuth(parser TokenParser, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				log.Warn("AdminAuth: missing Authorization header for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "missing admin token")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				log.Warn("AdminAuth: malformed Authorization header for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid token format")
				return
			}

			if _, err := parser.ParseToken(tokenString); err != nil {
				log.Warn("AdminAuth: invalid token for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
