package firestore

import (
	"context"
	"time"

	"iloveyou/internal/domain/entity"
	"iloveyou/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type coupleRepository struct {
	client *firestore.Client
}

// NewCoupleRepository creates the Firestore-backed couple repository.
func NewCoupleRepository(client *firestore.Client) repository.CoupleRepository {
	return &coupleRepository{client: client}
}

func (r *coupleRepository) FindCoupleByID(ctx context.Context, id string) (*entity.Couple, error) {
	snap, err := r.client.Collection(couplesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCoupleNotFound
		}

		return nil, errors.Wrap(err, "get couple document")
	}

	var couple entity.Couple
	if err := snap.DataTo(&couple); err != nil {
		return nil, errors.Wrap(err, "decode couple document")
	}
	couple.ID = snap.Ref.ID

	return &couple, nil
}

func (r *coupleRepository) FindPeacefulDaysCouples(ctx context.Context) ([]*entity.Couple, error) {
	query := r.client.Collection(couplesCollection).
		Where("peacefulDays.enabled", "==", true)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var couples []*entity.Couple
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate couples")
		}

		var couple entity.Couple
		if err := snap.DataTo(&couple); err != nil {
			return nil, errors.Wrap(err, "decode couple document")
		}
		couple.ID = snap.Ref.ID
		couples = append(couples, &couple)
	}

	return couples, nil
}

func (r *coupleRepository) StampMilestoneCelebrated(ctx context.Context, coupleID string, at time.Time) error {
	_, err := r.client.Collection(couplesCollection).Doc(coupleID).Update(ctx, []firestore.Update{
		{Path: "peacefulDays.lastMilestoneCelebrated", Value: at},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCoupleNotFound
		}

		return errors.Wrap(err, "stamp milestone celebrated")
	}

	return nil
}
