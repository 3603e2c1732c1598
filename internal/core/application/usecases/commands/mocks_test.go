package commands_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var now = time.Date(2026, 5, 2, 18, 30, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// Get also accepts a func() *order.Order return value so retries can load a fresh aggregate.
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if load, ok := args.Get(0).(func() *order.Order); ok {
		return load(), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *courier.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Find(ctx context.Context, orderID kernel.UUID) (*courier.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) Remove(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsByUserIDAndTextAndCreatedAtAfter(
	ctx context.Context,
	userID kernel.UUID,
	text string,
	cutoff time.Time,
) (bool, error) {
	args := m.Called(ctx, userID, text, cutoff)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct {
	mock.Mock

	orders      *MockOrderRepository
	assignments *MockAssignmentRepository
	payments    *MockPaymentRepository
	reviews     *MockReviewRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:      new(MockOrderRepository),
		assignments: new(MockAssignmentRepository),
		payments:    new(MockPaymentRepository),
		reviews:     new(MockReviewRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository { return m.assignments }

func (m *MockUoW) PaymentRepository() ports.PaymentRepository { return m.payments }

func (m *MockUoW) ReviewRepository() ports.ReviewRepository { return m.reviews }

// expectTx sets up a transaction that begins, optionally commits and always rolls back.
func (m *MockUoW) expectTx(commit error, committed bool) {
	m.On("Begin", mock.Anything).Return(nil)
	if committed {
		m.On("Commit", mock.Anything).Return(commit)
	}
	m.On("Rollback", mock.Anything).Return(nil)
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.assignments.AssertExpectations(t)
	m.payments.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
}

// stubFactory hands out the same unit of work on every Create.
type stubFactory[T any] struct{ uow T }

func (f stubFactory[T]) Create() T { return f.uow }

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func restoredOrder(status order.Status, courierID *kernel.UUID, version int) *order.Order {
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		status, courierID, now.Add(-time.Hour), now.Add(-30*time.Minute), version,
	)
	if err != nil {
		panic(err)
	}
	return o
}
