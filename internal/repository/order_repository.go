package repository

import (
	"fmt"
	"log"

	"github.com/Samvel1-1/Electronics/internal/domain"
	"github.com/Samvel1-1/Electronics/internal/storage"
)

const ordersCollection = "orders"

// OrderRepository owns the order collection. Orders are never deleted, only
// appended and status-transitioned.
type OrderRepository struct {
	store storage.RecordStore
}

func NewOrderRepository(store storage.RecordStore) *OrderRepository {
	return &OrderRepository{store: store}
}

// Create appends a fresh Active order. The order is returned even when the
// write fails so the caller can still act on it; the write error is reported
// alongside.
func (r *OrderRepository) Create(email, productName string, items []domain.OrderItem, total string) (*domain.Order, error) {
	order := domain.NewOrder(email, productName, items, total)
	orders := r.loadLenient()
	orders = append(orders, *order)
	if err := r.store.Save(ordersCollection, orders); err != nil {
		return order, err
	}
	return order, nil
}

// Find locates an order by id. A non-empty ownerEmail scopes the lookup to
// that owner; a mismatch is reported as not found, never as a different
// error, so an order's existence is not revealed to strangers.
func (r *OrderRepository) Find(id, ownerEmail string) (*domain.Order, error) {
	for _, o := range r.loadLenient() {
		if o.ID == id && (ownerEmail == "" || o.Email == ownerEmail) {
			found := o
			return &found, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
}

// SetStatus transitions an order's status and persists the collection.
func (r *OrderRepository) SetStatus(id string, status domain.OrderStatus) (*domain.Order, error) {
	orders := r.loadLenient()
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if status == domain.OrderCancelled {
			if err := orders[i].Cancel(); err != nil {
				return nil, err
			}
		} else {
			orders[i].Status = status
		}
		if err := r.store.Save(ordersCollection, orders); err != nil {
			return nil, err
		}
		updated := orders[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
}

// ListByOwner returns the owner's orders, newest first.
func (r *OrderRepository) ListByOwner(email string) []domain.Order {
	all := r.loadLenient()
	out := []domain.Order{}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Email == email {
			out = append(out, all[i])
		}
	}
	return out
}

// ListAll returns every order, newest first. Unlike the best-effort reads
// above, an unreadable collection is surfaced to the caller.
func (r *OrderRepository) ListAll() ([]domain.Order, error) {
	var all []domain.Order
	if err := r.store.Load(ordersCollection, &all); err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// loadLenient treats an unreadable collection as start-empty. Used by the
// mutation and owner-facing paths, where a corrupt ledger must not take the
// purchase flow down with it.
func (r *OrderRepository) loadLenient() []domain.Order {
	var orders []domain.Order
	if err := r.store.Load(ordersCollection, &orders); err != nil {
		log.Printf("Order collection read error, starting empty: %v", err)
		return nil
	}
	return orders
}
