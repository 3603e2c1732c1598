package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

type EstimateEtaQueryHandler struct {
	uowFactory SnapshotUoWFactory
	estimator  services.EtaEstimator
}

func NewEstimateEtaQueryHandler(uowFactory SnapshotUoWFactory, estimator services.EtaEstimator) EstimateEtaQueryHandler {
	return EstimateEtaQueryHandler{uowFactory: uowFactory, estimator: estimator}
}

// Handle reads the order and its assignment in one snapshot and estimates from them.
func (h EstimateEtaQueryHandler) Handle(ctx context.Context, query EstimateEtaQuery) (EstimateEtaResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateEtaResponse{}, err
	}

	var resp EstimateEtaResponse
	err := inSnapshot(ctx, h.uowFactory, func(uow SnapshotUoW) error {
		o, err := uow.OrderRepository().Get(ctx, query.OrderID())
		if err != nil {
			return err
		}

		assignment, err := uow.AssignmentRepository().Find(ctx, o.ID())
		if err != nil {
			return err
		}

		eta := h.estimator.Estimate(o, assignment)
		resp = EstimateEtaResponse{
			OrderID:         o.ID(),
			Status:          o.Status(),
			StatusChangedAt: o.StatusChangedAt(),
			Minutes:         eta.Minutes,
			Basis:           eta.Basis,
		}
		if assignment != nil {
			courierID := assignment.CourierID()
			resp.CourierID = &courierID
		}
		return nil
	})
	if err != nil {
		return EstimateEtaResponse{}, err
	}

	return resp, nil
}
