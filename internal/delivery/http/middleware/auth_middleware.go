package middleware

import (
	"strings"

	"iloveyou/internal/delivery/http/response"
	"iloveyou/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUID is the echo.Context key holding the authenticated uid.
const ContextKeyUID = "uid"

// AuthMiddleware authenticates callers with Firebase ID tokens.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the Bearer ID token and stores the caller's uid on
// the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		uid, err := m.verifier.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		c.Set(ContextKeyUID, uid)

		return next(c)
	}
}

// CallerUID extracts the authenticated uid set by Authenticate. Returns an
// empty string when the request did not pass authentication.
func CallerUID(c echo.Context) string {
	if uid, ok := c.Get(ContextKeyUID).(string); ok {
		return uid
	}

	return ""
}
