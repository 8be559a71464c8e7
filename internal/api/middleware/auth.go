package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDHeader заголовок с ID пользователя, проставляется шлюзом
const UserIDHeader = "X-User-ID"

// Auth достает пользователя из X-User-ID и кладет в контекст.
// Без заголовка запрос отклоняется с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
