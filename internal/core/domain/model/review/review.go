// Package review models a customer's review of a delivered order.
package review

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// MaxTextLength bounds the review body in characters.
const MaxTextLength = 2000

var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

type Review struct {
	id           kernel.UUID
	userID       kernel.UUID
	orderID      kernel.UUID
	restaurantID kernel.UUID
	text         string
	createdAt    time.Time

	isConstructed bool
}

// NormalizeText trims surrounding whitespace. Duplicate detection compares
// normalized texts, so the same normalization is applied before lookups.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// ValidateText checks a normalized review body.
func ValidateText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return errs.NewValueIsOutOfRangeError("text length", n, 1, MaxTextLength)
	}
	return nil
}

// NewReview creates a review. restaurantID is taken from the reviewed order.
func NewReview(id, userID, orderID, restaurantID kernel.UUID, text string, createdAt time.Time) (*Review, error) {
	r := &Review{
		id:            id,
		userID:        userID,
		orderID:       orderID,
		restaurantID:  restaurantID,
		text:          NormalizeText(text),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	var createdAtErr error
	if createdAt.IsZero() {
		createdAtErr = errs.NewValueIsRequiredError("created at")
	}

	if err := errors.Join(
		id.Validate(),
		wrapID("user id", userID),
		wrapID("order id", orderID),
		wrapID("restaurant id", restaurantID),
		ValidateText(r.text),
		createdAtErr,
	); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) ID() kernel.UUID           { return r.id }
func (r *Review) UserID() kernel.UUID       { return r.userID }
func (r *Review) OrderID() kernel.UUID      { return r.orderID }
func (r *Review) RestaurantID() kernel.UUID { return r.restaurantID }
func (r *Review) Text() string              { return r.text }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }

func wrapID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
