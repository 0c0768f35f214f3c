// Package auth verifies Firebase ID tokens presented by the mobile and web
// clients.
package auth

import (
	"context"

	"iloveyou/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseVerifier struct {
	client *auth.Client
}

// NewTokenVerifier creates a Firebase-backed ID-token verifier.
func NewTokenVerifier(ctx context.Context, app *firebase.App) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken validates the token signature and expiry and returns the
// authenticated uid.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.Wrap(err, "verify id token")
	}

	return token.UID, nil
}
