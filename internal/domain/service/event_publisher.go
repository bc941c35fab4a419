package service

import (
	"context"
)

// OrderLineEvent is one priced line inside an order event payload.
type OrderLineEvent struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// OrderCreatedEvent is published after a checkout transaction commits.
// Prices travel as decimal strings so consumers never see binary floats.
type OrderCreatedEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID    string           `json:"order_id"`
	UserID     string           `json:"user_id"`
	Lines      []OrderLineEvent `json:"lines"`
	TotalPrice string           `json:"total_price"`
}

// OrderEventPublisher defines the interface for publishing order events to a message broker.
type OrderEventPublisher interface {
	// PublishOrderCreated publishes an order-created event for downstream consumers.
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
