package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/Samvel1-1/Electronics/internal/domain"
	"github.com/Samvel1-1/Electronics/internal/messaging"
	"github.com/Samvel1-1/Electronics/internal/repository"
)

// Notifier dispatches the transactional emails of the order lifecycle.
type Notifier interface {
	SendPurchaseConfirmation(to string, order *domain.Order) error
	SendCancellation(to, orderID, total string, byAdmin bool) error
}

// EventPublisher mirrors lifecycle transitions onto the message bus.
// Optional; may be nil.
type EventPublisher interface {
	PublishOrderEvent(eventType messaging.OrderEventType, order *domain.Order) error
}

// OrderService orchestrates the purchase and cancellation flows: read the
// ledger, mutate, persist, then notify. A successful persistence is never
// undone by a failed notification.
type OrderService struct {
	orders    *repository.OrderRepository
	notifier  Notifier
	publisher EventPublisher
}

func NewOrderService(orders *repository.OrderRepository, notifier Notifier, publisher EventPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		notifier:  notifier,
		publisher: publisher,
	}
}

// Purchase records a new order and sends the confirmation email. The order
// write is fire-and-forget relative to the response: a persistence failure
// is logged but does not block the flow. A confirmation failure, however, is
// the operation's failure, even though the order was already persisted.
func (s *OrderService) Purchase(email, productName string, items []domain.OrderItem, total string) (*domain.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	order, err := s.orders.Create(email, productName, items, total)
	if err != nil {
		log.Printf("Order persistence error: %v", err)
	} else {
		log.Printf("Order created: OrderID=%s, Email=%s, Total=%s", order.ID, order.Email, order.Total)
	}

	if err := s.notifier.SendPurchaseConfirmation(email, order); err != nil {
		log.Printf("Purchase confirmation send error: %v", err)
		return order, err
	}

	s.publishEvent(messaging.OrderCreatedEvent, order)
	return order, nil
}

// Cancel is the owner-initiated cancellation. The lookup is scoped to the
// owner's email; a mismatch reads as not found. Notification is best-effort:
// the status change is authoritative and the operation succeeds regardless.
func (s *OrderService) Cancel(orderID, email string) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: orderId and email are required", domain.ErrValidation)
	}
	if _, err := s.orders.Find(orderID, email); err != nil {
		return nil, err
	}
	return s.cancel(orderID, false)
}

// AdminCancel cancels without an ownership check.
func (s *OrderService) AdminCancel(orderID string) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%w: orderId is required", domain.ErrValidation)
	}
	if _, err := s.orders.Find(orderID, ""); err != nil {
		return nil, err
	}
	return s.cancel(orderID, true)
}

func (s *OrderService) cancel(orderID string, byAdmin bool) (*domain.Order, error) {
	order, err := s.orders.SetStatus(orderID, domain.OrderCancelled)
	if err != nil {
		return nil, err
	}
	log.Printf("Order cancelled: OrderID=%s, ByAdmin=%t", order.ID, byAdmin)

	if err := s.notifier.SendCancellation(order.Email, order.ID, order.Total, byAdmin); err != nil {
		log.Printf("Cancellation notice send error: %v", err)
	}

	s.publishEvent(messaging.OrderCancelledEvent, order)
	return order, nil
}

func (s *OrderService) ListByOwner(email string) ([]domain.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	return s.orders.ListByOwner(email), nil
}

func (s *OrderService) ListAll() ([]domain.Order, error) {
	return s.orders.ListAll()
}

func (s *OrderService) publishEvent(eventType messaging.OrderEventType, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(eventType, order); err != nil {
		log.Printf("Order event publish error: %v", err)
	}
}
