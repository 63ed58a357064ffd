package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
)

// SessionCookieName имя cookie админской сессии, выданной CatalogService
const SessionCookieName = "SESSION"

// Auth middleware для защищенных админских маршрутов.
// Проверяет наличие сессионной cookie; сама сессия валидируется
// вышестоящим CatalogService, которому она прокидывается.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(SessionCookieName); err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
			return
		}
		next.ServeHTTP(w, r)
	})
}
