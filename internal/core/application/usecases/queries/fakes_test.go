package queries_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

var now = time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)

// snapshotState is what a fake snapshot returns from its repositories.
type snapshotState struct {
	orders      map[kernel.UUID]*order.Order
	assignments map[kernel.UUID]*courier.Assignment
	paid        map[kernel.UUID]bool
	reviews     []*review.Review
}

func newSnapshotState(orders ...*order.Order) *snapshotState {
	s := &snapshotState{
		orders:      map[kernel.UUID]*order.Order{},
		assignments: map[kernel.UUID]*courier.Assignment{},
		paid:        map[kernel.UUID]bool{},
	}
	for _, o := range orders {
		s.orders[o.ID()] = o
	}
	return s
}

// MockSnapshot records the transaction calls and serves reads from snapshotState.
type MockSnapshot struct {
	mock.Mock
	state *snapshotState
}

func newMockSnapshot(state *snapshotState) *MockSnapshot {
	m := &MockSnapshot{state: state}
	m.On("BeginSnapshot", mock.Anything).Return(nil)
	m.On("Rollback", mock.Anything).Return(nil)
	return m
}

func (m *MockSnapshot) BeginSnapshot(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSnapshot) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSnapshot) OrderRepository() ports.OrderRepository { return fakeOrders{m.state} }

func (m *MockSnapshot) AssignmentRepository() ports.AssignmentRepository { return fakeAssignments{m.state} }

func (m *MockSnapshot) PaymentRepository() ports.PaymentRepository { return fakePayments{m.state} }

func (m *MockSnapshot) ReviewRepository() ports.ReviewRepository { return fakeReviews{m.state} }

type snapshotFactory struct{ uow *MockSnapshot }

func (f snapshotFactory) Create() queries.SnapshotUoW { return f.uow }

type fakeOrders struct{ s *snapshotState }

func (fakeOrders) Add(context.Context, *order.Order) error    { return nil }
func (fakeOrders) Update(context.Context, *order.Order) error { return nil }

func (r fakeOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if o, ok := r.s.orders[id]; ok {
		return o, nil
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

type fakeAssignments struct{ s *snapshotState }

func (fakeAssignments) Add(context.Context, *courier.Assignment) error { return nil }
func (fakeAssignments) Remove(context.Context, kernel.UUID) error      { return nil }

func (r fakeAssignments) Find(_ context.Context, orderID kernel.UUID) (*courier.Assignment, error) {
	return r.s.assignments[orderID], nil
}

type fakePayments struct{ s *snapshotState }

func (fakePayments) Add(context.Context, *payment.Payment) error { return nil }

func (r fakePayments) ExistsByOrderID(_ context.Context, orderID kernel.UUID) (bool, error) {
	return r.s.paid[orderID], nil
}

type fakeReviews struct{ s *snapshotState }

func (fakeReviews) Add(context.Context, *review.Review) error { return nil }

func (r fakeReviews) ExistsByUserIDAndTextAndCreatedAtAfter(
	_ context.Context,
	userID kernel.UUID,
	text string,
	cutoff time.Time,
) (bool, error) {
	for _, rv := range r.s.reviews {
		if rv.UserID().IsEqual(userID) && rv.Text() == text && rv.CreatedAt().After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

func orderIn(status order.Status, courierID *kernel.UUID) *order.Order {
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		status, courierID, now.Add(-time.Hour), now.Add(-20*time.Minute), 2,
	)
	if err != nil {
		panic(err)
	}
	return o
}
