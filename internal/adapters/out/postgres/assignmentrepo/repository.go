package assignmentrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormAssignmentRepository struct {
	db *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add inserts the assignment. A second assignment for the same order fails with
// errs.ErrConcurrentModification.
func (r *GormAssignmentRepository) Add(ctx context.Context, assignment *courier.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(assignment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConcurrentModificationErrorWithCause("assignment", assignment.OrderID().String(), err)
		}
		return err
	}

	return nil
}

func (r *GormAssignmentRepository) Find(ctx context.Context, orderID kernel.UUID) (*courier.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes the assignment of the order; removing a missing one is not an error.
func (r *GormAssignmentRepository) Remove(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Delete(&AssignmentDTO{}).Error
}
