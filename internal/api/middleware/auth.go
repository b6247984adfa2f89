package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rohits-web03/plotwise/internal/config"
	"github.com/rohits-web03/plotwise/internal/models"
	"github.com/rohits-web03/plotwise/internal/utils"
)

type contextKey string

const sessionKey contextKey = "session"

// Session is the authenticated identity carried through the request
// context once the token cookie has been verified.
type Session struct {
	UserID uuid.UUID
	Name   string
	Role   models.Role
}

// SessionFrom extracts the verified session, if any.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}

var jwtSecret = config.Envs.JWTSecret

// AuthMiddleware validates the token cookie and injects the Session.
// Anything invalid is a uniform 401 with no hint about what failed.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr, err := r.Cookie("token")
		if err != nil {
			unauthorized(w)
			return
		}

		token, err := jwt.Parse(tokenStr.Value, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(w)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(w)
			return
		}

		idStr, _ := claims["userId"].(string)
		name, _ := claims["name"].(string)
		roleStr, _ := claims["role"].(string)

		userID, err := uuid.Parse(idStr)
		role := models.Role(roleStr)
		if err != nil || !role.Valid() {
			unauthorized(w)
			return
		}

		session := Session{UserID: userID, Name: name, Role: role}
		ctx := context.WithValue(r.Context(), sessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a handler group on an exact role match. It assumes
// AuthMiddleware already ran.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFrom(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if session.Role != role {
				utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
					Success: false,
					Message: "Forbidden",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
		Success: false,
		Message: "Unauthorized",
	})
}
