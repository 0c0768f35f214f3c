package service

import (
	"context"
)

// TokenVerifier verifies caller identity tokens on the callable HTTP surface.
type TokenVerifier interface {
	// VerifyIDToken validates a bearer ID token and returns the caller's uid.
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
