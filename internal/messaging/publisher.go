package messaging

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/Samvel1-1/Electronics/internal/domain"
)

type OrderEventType string

const (
	OrderCreatedEvent   OrderEventType = "order.created"
	OrderCancelledEvent OrderEventType = "order.cancelled"
)

// OrderEvent mirrors an order lifecycle transition onto the bus. Publishing
// is best-effort from the caller's view and never changes a response.
type OrderEvent struct {
	ID        uuid.UUID      `json:"id"`
	OrderID   string         `json:"order_id"`
	EventType OrderEventType `json:"event_type"`
	Email     string         `json:"email"`
	Total     string         `json:"total"`
	Timestamp time.Time      `json:"timestamp"`
	Service   string         `json:"service"`
}

type Publisher struct {
	client *RabbitMQClient
}

func NewPublisher(client *RabbitMQClient) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) PublishOrderEvent(eventType OrderEventType, order *domain.Order) error {
	if !p.client.IsConnected() {
		return fmt.Errorf("no RabbitMQ connection")
	}

	event := OrderEvent{
		ID:        uuid.New(),
		OrderID:   order.ID,
		EventType: eventType,
		Email:     order.Email,
		Total:     order.Total,
		Timestamp: time.Now(),
		Service:   "shop-backend",
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("event serialization error: %v", err)
	}

	routingKey := fmt.Sprintf("shop.%s", string(eventType))

	channel := p.client.Channel()
	err = channel.Publish(
		p.client.config.Exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID.String(),
			Timestamp:    event.Timestamp,
			Headers: amqp.Table{
				"order_id":   event.OrderID,
				"event_type": string(eventType),
				"service":    event.Service,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("event publish error: %v", err)
	}

	log.Printf("Event published: %s -> %s", routingKey, eventType)
	return nil
}
