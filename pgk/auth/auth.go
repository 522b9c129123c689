// Package auth issues and verifies the HS256 tokens the hotel service hands
// to members. Tokens travel raw in the Authorization header; a "Bearer "
// prefix is tolerated on input but never produced.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

type contextKey struct{}

type Claims[T any] struct {
	jwt.RegisteredClaims
	TokenInfo T `json:"info"`
}

func GenerateToken[T any](input T, now time.Time, exp time.Duration, secret string) (string, error) {
	tokenData := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims[T]{
		TokenInfo: input,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	return tokenData.SignedString([]byte(secret))
}

func VerifyToken[T any](tokenString, secret string) (*T, error) {
	tokenString = strings.TrimPrefix(strings.TrimSpace(tokenString), bearerPrefix)
	if tokenString == "" {
		return nil, jwt.ErrTokenMalformed
	}

	claims := &Claims[T]{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &claims.TokenInfo, nil
}

// Middleware puts the verified token info into the request context and hands
// requests without a valid token to reject.
func Middleware[T any](secret string, reject http.HandlerFunc) func(http.Handler) http.Handler {
	if reject == nil {
		reject = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenInfo, err := VerifyToken[T](r.Header.Get("Authorization"), secret)
			if err != nil {
				reject(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTokenInfo(r.Context(), tokenInfo)))
		})
	}
}

func WithTokenInfo[T any](ctx context.Context, info *T) context.Context {
	return context.WithValue(ctx, contextKey{}, info)
}

func GetTokenInfo[T any](r *http.Request) *T {
	tokenInfo, ok := r.Context().Value(contextKey{}).(*T)
	if !ok {
		return nil
	}

	return tokenInfo
}
