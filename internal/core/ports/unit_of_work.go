package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

type UnitOfWork interface {
	Begin(ctx context.Context) error

	// BeginSnapshot starts a read-only transaction in which all reads observe the
	// same committed state.
	BeginSnapshot(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	AssignmentRepository() AssignmentRepository

	PaymentRepository() PaymentRepository

	ReviewRepository() ReviewRepository
}
