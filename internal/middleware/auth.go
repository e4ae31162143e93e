package middleware

import (
	"context"
	"net/http"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
	internal_jwt "github.com/adiwijaya-dev/forum-api/internal/jwt"
	"github.com/adiwijaya-dev/forum-api/internal/logger"
	"github.com/adiwijaya-dev/forum-api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Key to store the user claims in the request context
type key int

const userClaimsKey key = 0

func NeedAuth(jwtService internal_jwt.JwtService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			accessCookie, err := r.Cookie("accessToken")
			if err == http.ErrNoCookie {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			} else if err != nil {
				logger.Log.Error("failed to read cookie", "err", err)
				http.Error(w, "Invalid cookie", http.StatusInternalServerError)
				return
			}

			token, err := jwtService.DecodeToken(accessCookie.Value)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}
			uid, _ := claims["uid"].(string)
			username, _ := claims["username"].(string)
			if uid == "" {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			user := &domain.User{Id: uid, Username: username}

			ctx := context.WithValue(r.Context(), userClaimsKey, user)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUserFromContext returns the authenticated user, or nil outside NeedAuth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
