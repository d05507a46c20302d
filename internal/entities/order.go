package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusUpdated   OrderStatus = "UPDATED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrProductUnavailable = errors.New("product service unavailable")
)

// ParseOrderStatus сравнивает строку с перечислением статусов.
// Неизвестный статус - жёсткая ошибка, никакого значения по умолчанию.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusCreated, StatusUpdated, StatusShipped, StatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

type Order struct {
	ID int64

	// Идентификаторы товаров в порядке запроса, дубликаты допустимы
	ItemIDs []int64
	Status  OrderStatus

	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string

	// nil - заказ активен
	DeletedAt *time.Time
	DeletedBy string
}

func (o Order) Deleted() bool {
	return o.DeletedAt != nil
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
}
