package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"
)

var ErrCanSubmitReviewQueryIsNotConstructed = errors.New(
	"CanSubmitReviewQuery must be created via NewCanSubmitReviewQuery constructor",
)

// CanSubmitReviewQuery checks whether userID may review the order with text.
// The text is normalized the same way submitted reviews are.
type CanSubmitReviewQuery struct {
	orderIDQuery

	userID kernel.UUID
	text   string
}

func NewCanSubmitReviewQuery(userID, orderID kernel.UUID, text string) (CanSubmitReviewQuery, error) {
	base, orderErr := newOrderIDQuery(orderID)

	var userErr error
	if err := userID.Validate(); err != nil {
		userErr = errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	normalized := review.NormalizeText(text)
	if err := errors.Join(orderErr, userErr, review.ValidateText(normalized)); err != nil {
		return CanSubmitReviewQuery{}, err
	}

	return CanSubmitReviewQuery{orderIDQuery: base, userID: userID, text: normalized}, nil
}

func (q CanSubmitReviewQuery) Validate() error {
	return q.guard.Validate(ErrCanSubmitReviewQueryIsNotConstructed)
}

func (q CanSubmitReviewQuery) UserID() kernel.UUID {
	return q.userID
}

func (q CanSubmitReviewQuery) Text() string {
	return q.text
}
