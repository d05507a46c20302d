package repo

import (
	"database/sql"
	"time"

	"github.com/msa-lab/order-service/internal/entities"
)

type Order struct {
	ID        int64          `db:"id"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	CreatedBy string         `db:"created_by"`
	UpdatedAt time.Time      `db:"updated_at"`
	UpdatedBy string         `db:"updated_by"`
	DeletedAt sql.NullTime   `db:"deleted_at"`
	DeletedBy sql.NullString `db:"deleted_by"`
}

// OrderItem - одна позиция заказа. position сохраняет порядок из запроса,
// дубликаты product_id допустимы.
type OrderItem struct {
	OrderID   int64 `db:"order_id"`
	Position  int   `db:"position"`
	ProductID int64 `db:"product_id"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		Status:    entities.OrderStatus(o.Status),
		CreatedAt: o.CreatedAt,
		CreatedBy: o.CreatedBy,
		UpdatedAt: o.UpdatedAt,
		UpdatedBy: o.UpdatedBy,
		DeletedBy: nullStringToString(o.DeletedBy),
	}

	if o.DeletedAt.Valid {
		deletedAt := o.DeletedAt.Time
		order.DeletedAt = &deletedAt
	}

	if len(items) > 0 {
		order.ItemIDs = make([]int64, len(items))
		for i, it := range items {
			order.ItemIDs[i] = it.ProductID
		}
	}

	return order
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
