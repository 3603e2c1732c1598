package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand carries a review of a delivered order. The text is
// normalized with review.NormalizeText on construction.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	text    string

	guard guard.ConstructorGuard
}

func NewSubmitReviewCommand(orderID, userID kernel.UUID, text string) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setText(text),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return cmd, nil
}

func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SubmitReviewCommand) UserID() kernel.UUID {
	return c.userID
}

func (c SubmitReviewCommand) Text() string {
	return c.text
}

func (c *SubmitReviewCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *SubmitReviewCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	c.userID = id
	return nil
}

func (c *SubmitReviewCommand) setText(text string) error {
	normalized := review.NormalizeText(text)
	if err := review.ValidateText(normalized); err != nil {
		return err
	}
	c.text = normalized
	return nil
}
