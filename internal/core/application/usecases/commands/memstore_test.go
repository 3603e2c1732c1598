package commands_test

import (
	"context"
	"sync"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

type orderRow struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	status          order.Status
	courierID       *kernel.UUID
	createdAt       time.Time
	statusChangedAt time.Time
	version         int
}

func rowOf(o *order.Order, version int) orderRow {
	return orderRow{
		id:              o.ID(),
		customerID:      o.CustomerID(),
		restaurantID:    o.RestaurantID(),
		status:          o.Status(),
		courierID:       o.Courier(),
		createdAt:       o.CreatedAt(),
		statusChangedAt: o.StatusChangedAt(),
		version:         version,
	}
}

// memStore keeps committed state and applies a transaction's writes atomically
// on commit, enforcing order versions and one assignment/payment per order.
type memStore struct {
	mu          sync.Mutex
	orders      map[kernel.UUID]orderRow
	assignments map[kernel.UUID]*courier.Assignment
	payments    map[kernel.UUID]*payment.Payment
	reviews     []*review.Review
}

func newMemStore() *memStore {
	return &memStore{
		orders:      map[kernel.UUID]orderRow{},
		assignments: map[kernel.UUID]*courier.Assignment{},
		payments:    map[kernel.UUID]*payment.Payment{},
	}
}

func (s *memStore) put(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = rowOf(o, o.Version())
}

func (s *memStore) order(id kernel.UUID) orderRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *memStore) assignment(id kernel.UUID) *courier.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignments[id]
}

func (s *memStore) paymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

func (s *memStore) Create() *memUoW {
	return &memUoW{store: s}
}

// memState is the part of memStore a transaction writes to.
type memState struct {
	orders      map[kernel.UUID]orderRow
	assignments map[kernel.UUID]*courier.Assignment
	payments    map[kernel.UUID]*payment.Payment
	reviews     []*review.Review
}

type memWrite func(s *memState) error

type memUoW struct {
	store  *memStore
	writes []memWrite
}

func (u *memUoW) Begin(context.Context) error {
	u.writes = nil
	return nil
}

func (u *memUoW) Commit(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snapshot := memState{
		orders:      cloneMap(u.store.orders),
		assignments: cloneMap(u.store.assignments),
		payments:    cloneMap(u.store.payments),
		reviews:     append([]*review.Review(nil), u.store.reviews...),
	}
	for _, w := range u.writes {
		if err := w(&snapshot); err != nil {
			return err
		}
	}
	u.store.orders = snapshot.orders
	u.store.assignments = snapshot.assignments
	u.store.payments = snapshot.payments
	u.store.reviews = snapshot.reviews
	u.writes = nil
	return nil
}

func (u *memUoW) Rollback(context.Context) error {
	u.writes = nil
	return nil
}

func (u *memUoW) OrderRepository() ports.OrderRepository { return memOrders{u} }

func (u *memUoW) AssignmentRepository() ports.AssignmentRepository { return memAssignments{u} }

func (u *memUoW) PaymentRepository() ports.PaymentRepository { return memPayments{u} }

func (u *memUoW) ReviewRepository() ports.ReviewRepository { return memReviews{u} }

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type memOrders struct{ u *memUoW }

func (r memOrders) Add(_ context.Context, o *order.Order) error {
	row := rowOf(o, o.Version())
	r.u.writes = append(r.u.writes, func(s *memState) error {
		if _, ok := s.orders[row.id]; ok {
			return errs.NewConcurrentModificationError("order", row.id.String(), 0)
		}
		s.orders[row.id] = row
		return nil
	})
	return nil
}

func (r memOrders) Update(_ context.Context, o *order.Order) error {
	expected := o.Version()
	row := rowOf(o, expected+1)
	r.u.writes = append(r.u.writes, func(s *memState) error {
		stored, ok := s.orders[row.id]
		if !ok {
			return errs.NewObjectNotFoundError("order", row.id)
		}
		if stored.version != expected {
			return errs.NewConcurrentModificationError("order", row.id.String(), expected)
		}
		s.orders[row.id] = row
		return nil
	})
	return nil
}

func (r memOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.u.store.mu.Lock()
	row, ok := r.u.store.orders[id]
	r.u.store.mu.Unlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return order.RestoreOrder(row.id, row.customerID, row.restaurantID, row.status,
		row.courierID, row.createdAt, row.statusChangedAt, row.version)
}

type memAssignments struct{ u *memUoW }

func (r memAssignments) Add(_ context.Context, a *courier.Assignment) error {
	r.u.writes = append(r.u.writes, func(s *memState) error {
		if _, ok := s.assignments[a.OrderID()]; ok {
			return errs.NewConcurrentModificationError("assignment", a.OrderID().String(), 0)
		}
		s.assignments[a.OrderID()] = a
		return nil
	})
	return nil
}

func (r memAssignments) Find(_ context.Context, orderID kernel.UUID) (*courier.Assignment, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	return r.u.store.assignments[orderID], nil
}

func (r memAssignments) Remove(_ context.Context, orderID kernel.UUID) error {
	r.u.writes = append(r.u.writes, func(s *memState) error {
		delete(s.assignments, orderID)
		return nil
	})
	return nil
}

type memPayments struct{ u *memUoW }

func (r memPayments) Add(_ context.Context, p *payment.Payment) error {
	r.u.writes = append(r.u.writes, func(s *memState) error {
		if _, ok := s.payments[p.OrderID()]; ok {
			return errs.NewConcurrentModificationError("payment", p.OrderID().String(), 0)
		}
		s.payments[p.OrderID()] = p
		return nil
	})
	return nil
}

func (r memPayments) ExistsByOrderID(_ context.Context, orderID kernel.UUID) (bool, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	_, ok := r.u.store.payments[orderID]
	return ok, nil
}

type memReviews struct{ u *memUoW }

func (r memReviews) Add(_ context.Context, rv *review.Review) error {
	r.u.writes = append(r.u.writes, func(s *memState) error {
		s.reviews = append(s.reviews, rv)
		return nil
	})
	return nil
}

func (r memReviews) ExistsByUserIDAndTextAndCreatedAtAfter(
	_ context.Context,
	userID kernel.UUID,
	text string,
	cutoff time.Time,
) (bool, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	for _, rv := range r.u.store.reviews {
		if rv.UserID().IsEqual(userID) && rv.Text() == text && rv.CreatedAt().After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

type memFulfillmentFactory struct{ store *memStore }

func (f memFulfillmentFactory) Create() commands.FulfillmentUoW { return f.store.Create() }

type memPaymentFactory struct{ store *memStore }

func (f memPaymentFactory) Create() commands.PaymentUoW { return f.store.Create() }

type memReviewFactory struct{ store *memStore }

func (f memReviewFactory) Create() commands.ReviewUoW { return f.store.Create() }
