package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msa-lab/order-service/internal/entities"
	"github.com/msa-lab/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOrder - upsert по идентификатору: новый заказ получает id из базы,
// существующий обновляется. Позиции заказа перезаписываются целиком,
// позиция в запросе сохраняется через колонку position.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.ID == 0 {
		query, args := r.qb.Insert("orders").
			Columns("status", "created_at", "created_by", "updated_at", "updated_by", "deleted_at", "deleted_by").
			Values(
				string(o.Status), o.CreatedAt, o.CreatedBy, o.UpdatedAt, o.UpdatedBy,
				nullTime(o.DeletedAt), nullString(o.DeletedBy),
			).
			Suffix("RETURNING id").
			MustSql()

		if err := r.getContext(ctx, &o.ID, query, args...); err != nil {
			return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
		}
	} else {
		query, args := r.qb.Update("orders").
			Set("status", string(o.Status)).
			Set("updated_at", o.UpdatedAt).
			Set("updated_by", o.UpdatedBy).
			Set("deleted_at", nullTime(o.DeletedAt)).
			Set("deleted_by", nullString(o.DeletedBy)).
			Where(sq.Eq{"id": o.ID}).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
		}
	}

	if err := r.replaceItems(ctx, o.ID, o.ItemIDs); err != nil {
		return entities.Order{}, err
	}

	return o, nil
}

func (r *postgresRepo) replaceItems(ctx context.Context, orderID int64, itemIDs []int64) error {
	query, args := r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	if len(itemIDs) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id")

	for i, productID := range itemIDs {
		q = q.Values(orderID, i, productID)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

// GetOrderByID возвращает заказ независимо от пометки удаления,
// фильтрация soft delete - забота сервисного слоя.
func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "status", "created_at", "created_by",
		"updated_at", "updated_by", "deleted_at", "deleted_by").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	query, args := r.qb.Select("order_id", "position", "product_id").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position ASC").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

// SearchOrders - постраничный поиск активных заказов. Не-администраторы
// видят только собственные заказы.
func (r *postgresRepo) SearchOrders(ctx context.Context, criteria entities.SearchCriteria, page entities.Page, role, userID string) (entities.OrderPage, error) {
	where := r.searchConditions(criteria, role, userID)

	query, args := r.qb.Select("COUNT(*)").
		From("orders").
		Where(where).
		MustSql()

	var total int64
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return entities.OrderPage{}, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args = r.qb.Select(
		"id", "status", "created_at", "created_by",
		"updated_at", "updated_by", "deleted_at", "deleted_by").
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Number * page.Size)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return entities.OrderPage{}, fmt.Errorf("failed to select orders: %w", err)
	}

	result, err := r.attachItems(ctx, orders)
	if err != nil {
		return entities.OrderPage{}, err
	}

	return entities.OrderPage{
		Orders: result,
		Total:  total,
		Page:   page.Number,
		Size:   page.Size,
	}, nil
}

func (r *postgresRepo) searchConditions(criteria entities.SearchCriteria, role, userID string) sq.And {
	where := sq.And{sq.Eq{"deleted_at": nil}}

	if role != entities.RoleAdmin && role != entities.RoleManager {
		where = append(where, sq.Eq{"created_by": userID})
	}
	if criteria.Status != nil {
		where = append(where, sq.Eq{"status": string(*criteria.Status)})
	}
	if criteria.ItemID != nil {
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.product_id = ?)",
			*criteria.ItemID,
		))
	}

	return where
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"id", "status", "created_at", "created_by",
		"updated_at", "updated_by", "deleted_at", "deleted_by").
		From("orders").
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.attachItems(ctx, orders)
}

func (r *postgresRepo) attachItems(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args := r.qb.Select("order_id", "position", "product_id").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position ASC").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[int64][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
