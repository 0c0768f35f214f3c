// Package firestore implements the repository interfaces on Cloud Firestore.
// Documents are the single source of truth; every job run reads fresh state.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Collection names shared with the mobile and web clients.
const (
	remindersCollection = "reminders"
	usersCollection     = "users"
	couplesCollection   = "couples"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewClient creates the Firestore client from the shared Firebase app and
// closes it on shutdown.
func NewClient(params ClientParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

// Module provides the Firestore FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewClient),
	fx.Provide(NewReminderRepository),
	fx.Provide(NewUserRepository),
	fx.Provide(NewCoupleRepository),
)
