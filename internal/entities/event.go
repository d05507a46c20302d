package entities

import "time"

type OrderEventType string

const (
	OrderCreated OrderEventType = "order.created"
	OrderUpdated OrderEventType = "order.updated"
	OrderDeleted OrderEventType = "order.deleted"
)

type OrderEvent struct {
	Type       OrderEventType
	OrderID    int64
	UserID     string
	ItemIDs    []int64
	Status     OrderStatus
	OccurredAt time.Time
}
