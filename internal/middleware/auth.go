package middleware

import (
	"Fabrika/internal/service"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// WithAuth разбирает Authorization: Bearer <jwt> и кладёт id пользователя
// в контекст запроса. Запрос НЕ отклоняется: ни один эндпоинт не требует
// авторизации, анонимные и невалидные токены просто проходят дальше
// без user id. Таблица сессий
// здесь не проверяется — отозванный токен валиден до своего exp.
func WithAuth(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				if uid, err := tokens.Parse(strings.TrimPrefix(auth, "Bearer ")); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, uid))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext возвращает id пользователя, если токен был валиден.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}
