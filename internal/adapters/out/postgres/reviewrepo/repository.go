// Package reviewrepo persists reviews with GORM.
package reviewrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewDTO is indexed on (user_id, created_at) for the duplicate lookup.
type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_user_created,priority:1"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Text         string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null;index:idx_reviews_user_created,priority:2"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Add(ctx context.Context, rv *review.Review) error {
	if err := rv.Validate(); err != nil {
		return err
	}

	dto := ReviewDTO{
		ID:           rv.ID().Bytes(),
		UserID:       rv.UserID().Bytes(),
		OrderID:      rv.OrderID().Bytes(),
		RestaurantID: rv.RestaurantID().Bytes(),
		Text:         rv.Text(),
		CreatedAt:    rv.CreatedAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormReviewRepository) ExistsByUserIDAndTextAndCreatedAtAfter(
	ctx context.Context,
	userID kernel.UUID,
	text string,
	cutoff time.Time,
) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("user_id = ? AND text = ? AND created_at > ?", userID.Bytes(), text, cutoff).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
