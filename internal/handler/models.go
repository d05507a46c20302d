package handler

import (
	"time"

	"github.com/msa-lab/order-service/internal/entities"
)

// CreateOrderRequest - тело запроса на создание заказа
type CreateOrderRequest struct {
	OrderItemIDs []int64 `json:"order_item_ids" validate:"required,min=1,dive,gt=0"`
}

// UpdateOrderRequest - тело запроса на обновление заказа
type UpdateOrderRequest struct {
	OrderItemIDs []int64 `json:"order_item_ids" validate:"required,min=1,dive,gt=0"`
	Status       string  `json:"status" validate:"required"`
}

// Order представляет заказ в ответе API
type Order struct {
	ID           int64     `json:"id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
	UpdatedAt    time.Time `json:"updated_at"`
	UpdatedBy    string    `json:"updated_by"`
	OrderItemIDs []int64   `json:"order_item_ids"`
}

// OrderPage - страница результатов поиска
type OrderPage struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:           o.ID,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		CreatedBy:    o.CreatedBy,
		UpdatedAt:    o.UpdatedAt,
		UpdatedBy:    o.UpdatedBy,
		OrderItemIDs: o.ItemIDs,
	}
}

func OrderPageToJSON(p entities.OrderPage) OrderPage {
	orders := make([]Order, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, OrderEntityToJSON(o))
	}
	return OrderPage{
		Orders: orders,
		Total:  p.Total,
		Page:   p.Page,
		Size:   p.Size,
	}
}
