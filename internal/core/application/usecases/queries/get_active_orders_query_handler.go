package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads active orders straight from the database.
type GetActiveOrdersQueryHandler struct {
	db        *gorm.DB
	estimator services.EtaEstimator
	clock     ports.Clock
}

func NewGetActiveOrdersQueryHandler(
	db *gorm.DB,
	estimator services.EtaEstimator,
	clock ports.Clock,
) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db, estimator: estimator, clock: clock}
}

func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.status_changed_at,
			a.courier_id
		FROM orders o
		LEFT JOIN courier_assignments a ON a.order_id = o.id
		WHERE o.status NOT IN (?, ?)
		ORDER BY o.status_changed_at, o.id
	`, int(order.Delivered), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp      GetActiveOrdersQueryResponse
			id        uuid.UUID
			status    int
			changedAt time.Time
			courierID *uuid.UUID
		)

		if err = rows.Scan(&id, &status, &changedAt, &courierID); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		resp.Status = order.Status(status)
		if err = resp.Status.Validate(); err != nil {
			return nil, err
		}

		if courierID != nil {
			cID, courierErr := kernel.UUIDFromBytes(courierID[:])
			if courierErr != nil {
				return nil, courierErr
			}
			resp.CourierID = &cID
		}

		eta := h.estimator.EstimateFor(resp.Status, resp.CourierID != nil)
		resp.StatusChangedAt = changedAt.UTC()
		resp.EtaMinutes = eta.Minutes
		resp.EtaBasis = eta.Basis
		resp.Elapsed = now.Sub(resp.StatusChangedAt)
		resp.Overdue = resp.Elapsed > time.Duration(eta.Minutes)*time.Minute

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
