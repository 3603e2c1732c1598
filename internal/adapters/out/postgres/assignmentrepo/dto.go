// Package assignmentrepo persists courier assignments with GORM.
// The primary key on order_id allows one assignment per order.
package assignmentrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AssignmentDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedAt time.Time `gorm:"not null"`
}

func (AssignmentDTO) TableName() string {
	return "courier_assignments"
}

func fromDomain(a *courier.Assignment) AssignmentDTO {
	return AssignmentDTO{
		OrderID:    a.OrderID().Bytes(),
		CourierID:  a.CourierID().Bytes(),
		AssignedAt: a.AssignedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*courier.Assignment, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	return courier.NewAssignment(orderID, courierID, dto.AssignedAt)
}
