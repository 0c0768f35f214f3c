// Package firebase initializes the shared Firebase app used by Firestore,
// FCM messaging and ID-token verification.
package firebase

import (
	"context"

	"iloveyou/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp creates the Firebase app from configuration. When no credentials
// path is set, Application Default Credentials apply.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	return app, nil
}
