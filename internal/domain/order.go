package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderActive    OrderStatus = "Active"
	OrderCancelled OrderStatus = "Cancelled"
)

type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is one purchase transaction. Total is the display string submitted
// by the caller and is stored verbatim, never recomputed. ProductName is the
// legacy single-item label used when the cart is empty.
type Order struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	ProductName string      `json:"productName,omitempty"`
	Items       []OrderItem `json:"items"`
	Total       string      `json:"total"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func NewOrder(email, productName string, items []OrderItem, total string) *Order {
	return &Order{
		ID:          uuid.New().String(),
		Email:       email,
		ProductName: productName,
		Items:       items,
		Total:       total,
		Status:      OrderActive,
		CreatedAt:   time.Now().UTC(),
	}
}

// Cancel transitions the order to Cancelled. Cancelled is terminal: a second
// cancellation is rejected.
func (o *Order) Cancel() error {
	if o.Status == OrderCancelled {
		return ErrAlreadyCancelled
	}
	o.Status = OrderCancelled
	return nil
}
