package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msa-lab/order-service/internal/entities"
	"github.com/msa-lab/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	headerUserID = "X-User-Id"
	headerRole   = "X-User-Role"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type OrderService interface {
	CreateOrder(ctx context.Context, itemIDs []int64, userID string) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	GetOrders(ctx context.Context, criteria entities.SearchCriteria, page entities.Page, role, userID string) (entities.OrderPage, error)
	UpdateOrder(ctx context.Context, orderID int64, itemIDs []int64, status, userID string) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID int64, deletedBy string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.GetOrders)
		r.Get("/{order_id}", h.GetOrderByID)
		r.Put("/{order_id}", h.UpdateOrder)
		r.Delete("/{order_id}", h.DeleteOrder)
	})
}

// CreateOrder создаёт заказ.
// @Summary      Создать заказ
// @Description  Проверяет наличие товаров, резервирует их и сохраняет заказ
// @Tags         orders
// @Accept       json
// @Param        request  body  CreateOrderRequest  true  "Состав заказа"
// @Param        X-User-Id  header  string  true  "Идентификатор пользователя"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Товара нет в наличии"
// @Failure      503  {object}  utils.ErrorResponse "Сервис товаров недоступен"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.Header.Get(headerUserID)
	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, req.OrderItemIDs, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ по идентификатору, удалённые заказы не видны
// @Tags         orders
// @Param        order_id  path  int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrders возвращает страницу заказов.
// @Summary      Поиск заказов
// @Description  Постраничный поиск, не-администраторы видят только свои заказы
// @Tags         orders
// @Param        status   query  string  false  "Фильтр по статусу"
// @Param        item_id  query  int     false  "Фильтр по товару"
// @Param        page     query  int     false  "Номер страницы (с нуля)"
// @Param        size     query  int     false  "Размер страницы"
// @Param        X-User-Id    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль пользователя"
// @Success      200  {object}  OrderPage
// @Router       /orders [get]
func (h *HTTPHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.Header.Get(headerUserID)
	role := r.Header.Get(headerRole)
	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	criteria, err := parseSearchCriteria(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.GetOrders(ctx, criteria, parsePage(r), role, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderPageToJSON(result), http.StatusOK)
}

// UpdateOrder обновляет состав и статус заказа.
// @Summary      Обновить заказ
// @Tags         orders
// @Accept       json
// @Param        order_id  path  int  true  "Идентификатор заказа"
// @Param        request   body  UpdateOrderRequest  true  "Новый состав и статус"
// @Param        X-User-Id  header  string  true  "Идентификатор пользователя"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Невалидный статус"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [put]
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	userID := r.Header.Get(headerUserID)
	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrder(ctx, orderID, req.OrderItemIDs, req.Status, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder помечает заказ удалённым.
// @Summary      Удалить заказ
// @Tags         orders
// @Param        order_id  path  int  true  "Идентификатор заказа"
// @Param        X-User-Id  header  string  true  "Идентификатор пользователя"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	userID := r.Header.Get(headerUserID)
	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteOrder(ctx, orderID, userID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found or has been deleted", http.StatusNotFound)
	case errors.Is(err, entities.ErrOutOfStock):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrProductUnavailable):
		utils.WriteError(w, "product service is currently unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func parseSearchCriteria(r *http.Request) (entities.SearchCriteria, error) {
	var criteria entities.SearchCriteria

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := entities.ParseOrderStatus(raw)
		if err != nil {
			return entities.SearchCriteria{}, err
		}
		criteria.Status = &status
	}

	if raw := r.URL.Query().Get("item_id"); raw != "" {
		itemID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.SearchCriteria{}, errors.New("invalid item_id")
		}
		criteria.ItemID = &itemID
	}

	return criteria, nil
}

func parsePage(r *http.Request) entities.Page {
	page := entities.Page{Number: 0, Size: defaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			page.Number = n
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= maxPageSize {
			page.Size = n
		}
	}

	return page
}
