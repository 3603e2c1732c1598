// Package queries contains read operations for retrieving fulfillment state.
// Eligibility and ETA queries load everything they need inside one read-only
// snapshot so a decision never mixes state from before and after a concurrent write.
package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

type (
	// SnapshotUoW is a read-only unit of work. Rollback ends the snapshot.
	SnapshotUoW interface {
		BeginSnapshot(ctx context.Context) error
		Rollback(ctx context.Context) error
		OrderRepository() ports.OrderRepository
		AssignmentRepository() ports.AssignmentRepository
		PaymentRepository() ports.PaymentRepository
		ReviewRepository() ports.ReviewRepository
	}

	SnapshotUoWFactory interface {
		Create() SnapshotUoW
	}
)

// inSnapshot runs read inside a fresh snapshot and always closes it.
func inSnapshot(ctx context.Context, factory SnapshotUoWFactory, read func(uow SnapshotUoW) error) error {
	uow := factory.Create()
	if err := uow.BeginSnapshot(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return read(uow)
}
