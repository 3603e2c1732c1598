package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
)

type ReviewRepository interface {
	Add(ctx context.Context, r *review.Review) error

	// ExistsByUserIDAndTextAndCreatedAtAfter reports whether userID has a review with
	// exactly this text created strictly after cutoff.
	ExistsByUserIDAndTextAndCreatedAtAfter(ctx context.Context, userID kernel.UUID, text string, cutoff time.Time) (bool, error)
}
