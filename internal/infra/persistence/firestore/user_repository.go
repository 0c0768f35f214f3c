package firestore

import (
	"context"
	"time"

	"iloveyou/internal/domain/entity"
	"iloveyou/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates the Firestore-backed user repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindUserByID(ctx context.Context, uid string) (*entity.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "get user document")
	}

	var user entity.User
	if err := snap.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "decode user document")
	}
	user.UID = snap.Ref.ID

	return &user, nil
}

func (r *userRepository) UpdatePushToken(ctx context.Context, uid, token string, at time.Time) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "fcmToken", Value: token},
		{Path: "fcmTokenUpdated", Value: at},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "update push token")
	}

	return nil
}

func (r *userRepository) ClearPushToken(ctx context.Context, uid string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "fcmToken", Value: firestore.Delete},
		{Path: "fcmTokenUpdated", Value: firestore.Delete},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "clear push token")
	}

	return nil
}
