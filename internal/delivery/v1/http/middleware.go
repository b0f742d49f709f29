package http

import (
	"context"
	"net/http"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/google/uuid"
)

type ctxKey int

const (
	ctxKeyUser ctxKey = iota
	ctxKeyCartToken
)

// sessionMiddleware разрешает идентичность по токену сессии из заголовка.
// Отсутствующий или неизвестный токен не является ошибкой: запрос
// продолжается как анонимный.
func sessionMiddleware(sessionUC usecase.SessionUC, shop *cfg.ShopCfg) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(shop.SessionTokenName)
			if user, ok := sessionUC.Resolve(r.Context(), token); ok {
				r = r.WithContext(context.WithValue(r.Context(), ctxKeyUser, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// cartTokenMiddleware гарантирует токен корзины: берет его из заголовка
// или выпускает новый и возвращает в том же заголовке ответа.
func cartTokenMiddleware(shop *cfg.ShopCfg) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(shop.CartTokenName)
			if token == "" {
				token = uuid.NewString()
			}
			w.Header().Set(shop.CartTokenName, token)

			r = r.WithContext(context.WithValue(r.Context(), ctxKeyCartToken, token))
			next.ServeHTTP(w, r)
		})
	}
}

// requireAdmin пропускает только запросы администратора.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := sessionUser(r)
		if user == nil {
			WriteError(w, e.ErrAuthRequired)
			return
		}
		if !user.IsAdmin {
			WriteError(w, e.ErrAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionUser возвращает идентичность запроса или nil для анонимного.
func sessionUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(ctxKeyUser).(*domain.User)
	return user
}

// cartToken возвращает токен корзины, выпущенный cartTokenMiddleware.
func cartToken(r *http.Request) string {
	token, _ := r.Context().Value(ctxKeyCartToken).(string)
	return token
}
