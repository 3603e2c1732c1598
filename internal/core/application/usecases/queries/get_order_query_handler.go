package queries

import (
	"context"
)

type GetOrderQueryHandler struct {
	uowFactory SnapshotUoWFactory
}

func NewGetOrderQueryHandler(uowFactory SnapshotUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order with its current assignment, if any.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	err := inSnapshot(ctx, h.uowFactory, func(uow SnapshotUoW) error {
		o, err := uow.OrderRepository().Get(ctx, query.OrderID())
		if err != nil {
			return err
		}

		current, err := uow.AssignmentRepository().Find(ctx, o.ID())
		if err != nil {
			return err
		}

		resp = GetOrderQueryResponse{
			ID:              o.ID(),
			CustomerID:      o.CustomerID(),
			RestaurantID:    o.RestaurantID(),
			Status:          o.Status(),
			CreatedAt:       o.CreatedAt(),
			StatusChangedAt: o.StatusChangedAt(),
			Version:         o.Version(),
		}
		if current != nil {
			resp.Assignment = &AssignmentResponse{
				CourierID:  current.CourierID(),
				AssignedAt: current.AssignedAt(),
			}
		}
		return nil
	})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
