package repository

import (
	"context"
	"time"

	"iloveyou/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCoupleNotFound is returned when a couple document does not exist.
var ErrCoupleNotFound = errors.New("couple not found")

// CoupleRepository defines the interface for couple-related store operations.
type CoupleRepository interface {
	// FindCoupleByID retrieves a couple by its document ID.
	FindCoupleByID(ctx context.Context, id string) (*entity.Couple, error)

	// FindPeacefulDaysCouples retrieves all couples with peaceful-days
	// tracking enabled.
	FindPeacefulDaysCouples(ctx context.Context) ([]*entity.Couple, error)

	// StampMilestoneCelebrated records that the current streak milestone was
	// celebrated at the given time.
	StampMilestoneCelebrated(ctx context.Context, coupleID string, at time.Time) error
}
