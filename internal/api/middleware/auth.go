package middleware

import (
	"context"
	"net/http"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
)

// UsernameHeader заголовок с учетной записью вошедшего пользователя.
// Система живет во внутренней сети лаборатории: фронтенд проставляет
// заголовок после входа, токены и сессии не используются
const UsernameHeader = "X-Username"

const msgUnauthorized = "требуется вход в систему"

type contextKey string

const usernameContextKey contextKey = "username"

// Auth проверяет наличие учетной записи в заголовке запроса и кладет
// ее в контекст. Запросы без заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get(UsernameHeader)
		if username == "" {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), usernameContextKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UsernameFromContext возвращает учетную запись из контекста запроса
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameContextKey).(string)
	return username
}
