package auth

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"fleet/internal/entities"
)

type contextKey struct{}

var callerKey contextKey

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware проверяет Bearer токен и кладет Caller в контекст запроса.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			var tokenClaims claims
			token, err := jwt.ParseWithClaims(tokenString, &tokenClaims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := strconv.ParseInt(tokenClaims.Subject, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			caller := entities.Caller{
				UserID: userID,
				Role:   entities.RoleType(tokenClaims.Role),
			}

			next.ServeHTTP(w, r.WithContext(ContextWithCaller(r.Context(), caller)))
		})
	}
}

func ContextWithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

func CallerFromContext(ctx context.Context) (entities.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(entities.Caller)
	return caller, ok
}
