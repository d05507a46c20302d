package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/msa-lab/order-service/internal/entities"
	"github.com/msa-lab/order-service/pkg/cache"
	"github.com/msa-lab/order-service/pkg/trm"
	"github.com/msa-lab/order-service/pkg/utils"
)

// Пространство ключей кеша заказов. Любая мутация вычищает его целиком:
// поштучная инвалидация не знает, какие ещё ключи затронуты изменением.
const ordersNamespace = "orders"

type ProductGateway interface {
	GetProduct(ctx context.Context, productID int64) (entities.ProductSnapshot, error)
	ReduceQuantity(ctx context.Context, productID int64, amount int) error
}

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	SearchOrders(ctx context.Context, criteria entities.SearchCriteria, page entities.Page, role, userID string) (entities.OrderPage, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	EvictNamespace(namespace string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	products  ProductGateway
	repo      OrderRepo
	cache     Cache
	events    EventPublisher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	products ProductGateway,
	repo OrderRepo,
	cache Cache,
	events EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		products:  products,
		repo:      repo,
		cache:     cache,
		events:    events,
	}
}

// CreateOrder проверяет наличие всех товаров, резервирует их по одному
// и сохраняет заказ. Проверка идёт по всему списку до первой резервации:
// если хоть один товар недоступен, ни одного списания не происходит.
func (s *orderService) CreateOrder(ctx context.Context, itemIDs []int64, userID string) (entities.Order, error) {
	for _, productID := range itemIDs {
		product, err := s.products.GetProduct(ctx, productID)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to get product %d: %w", productID, err)
		}
		if product.Quantity < 1 {
			return entities.Order{}, fmt.Errorf("product %d: %w", productID, entities.ErrOutOfStock)
		}
	}

	// Списания идут в порядке запроса и не откатываются при частичном
	// сбое: уже выполненные резервации сверяет внешний процесс.
	for i, productID := range itemIDs {
		if err := s.products.ReduceQuantity(ctx, productID, 1); err != nil {
			s.logger.WarnContext(ctx, "reservation failed, earlier reservations left in place",
				slog.Int64("product_id", productID),
				slog.Int("reserved_count", i),
				slog.Any("error", err))
			return entities.Order{}, fmt.Errorf("failed to reserve product %d: %w", productID, err)
		}
	}

	now := time.Now()
	order := entities.Order{
		ItemIDs:   itemIDs,
		Status:    entities.StatusCreated,
		CreatedAt: now,
		CreatedBy: userID,
		UpdatedAt: now,
		UpdatedBy: userID,
	}

	var saved entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repo.SaveOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, entities.OrderCreated, saved, userID)
	s.logger.DebugContext(ctx, "order created", slog.Int64("order_id", saved.ID))
	return saved, nil
}

// GetOrderByID - чтение через кеш. Удалённый и несуществующий заказ
// неразличимы для вызывающего.
func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	key := cache.Key(ordersNamespace, strconv.FormatInt(orderID, 10))

	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.ErrorContext(ctx, "failed to unmarshal cached order",
				slog.Int64("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if order.Deleted() {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal order",
			slog.Int64("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(key, data)
	return order, nil
}

func (s *orderService) GetOrders(ctx context.Context, criteria entities.SearchCriteria, page entities.Page, role, userID string) (entities.OrderPage, error) {
	return s.repo.SearchOrders(ctx, criteria, page, role, userID)
}

// UpdateOrder применяет новый состав и статус. Невалидный статус - отказ
// до любых изменений.
func (s *orderService) UpdateOrder(ctx context.Context, orderID int64, itemIDs []int64, status, userID string) (entities.Order, error) {
	parsed, err := entities.ParseOrderStatus(status)
	if err != nil {
		return entities.Order{}, err
	}

	order, err := s.activeOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	order.ItemIDs = itemIDs
	order.Status = parsed
	order.UpdatedAt = time.Now()
	order.UpdatedBy = userID

	var saved entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repo.SaveOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.EvictNamespace(ordersNamespace)
	s.publish(ctx, entities.OrderUpdated, saved, userID)
	s.logger.DebugContext(ctx, "order updated", slog.Int64("order_id", saved.ID))
	return saved, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64, deletedBy string) error {
	order, err := s.activeOrder(ctx, orderID)
	if err != nil {
		return err
	}

	now := time.Now()
	order.DeletedAt = &now
	order.DeletedBy = deletedBy

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.EvictNamespace(ordersNamespace)
	s.publish(ctx, entities.OrderDeleted, order, deletedBy)
	s.logger.DebugContext(ctx, "order deleted", slog.Int64("order_id", orderID))
	return nil
}

// WarmUpCache прогревает кеш последними активными заказами при старте.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.Int64("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(cache.Key(ordersNamespace, strconv.FormatInt(order.ID, 10)), data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) activeOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Deleted() {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

// Публикация событий не влияет на исход операции - ошибка только логируется.
func (s *orderService) publish(ctx context.Context, eventType entities.OrderEventType, order entities.Order, userID string) {
	event := entities.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     userID,
		ItemIDs:    order.ItemIDs,
		Status:     order.Status,
		OccurredAt: time.Now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("type", string(eventType)),
			slog.Int64("order_id", order.ID),
			slog.Any("error", err))
	}
}
