package product

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msa-lab/order-service/internal/config"
	"github.com/msa-lab/order-service/internal/entities"
	"github.com/msa-lab/order-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var fallbacksServed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "order_service",
	Subsystem: "product_client",
	Name:      "fallbacks_total",
	Help:      "Total number of fallback product snapshots served.",
})

type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	retry      utils.RetryConfig
}

func NewClient(logger *slog.Logger, cfg config.Product) *Client {
	return &Client{
		logger:     logger.With(slog.String("client", "product")),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		retry: utils.RetryConfig{
			MaxAttempts:  cfg.RetryAttempts,
			InitialDelay: cfg.RetryDelay,
		},
	}
}

type productResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
}

// GetProduct возвращает снапшот товара. Если сервис товаров недоступен,
// возвращается fallback с нулевым количеством - чтение деградирует мягко,
// вызывающий видит "нет в наличии" независимо от причины.
func (c *Client) GetProduct(ctx context.Context, productID int64) (entities.ProductSnapshot, error) {
	var snapshot entities.ProductSnapshot

	fn := func() error {
		url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", res.StatusCode)
		}

		var body productResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return err
		}

		snapshot = entities.ProductSnapshot{
			ID:          body.ID,
			Name:        body.Name,
			Description: body.Description,
			Price:       body.Price,
			Quantity:    body.Quantity,
		}
		return nil
	}

	if err := utils.Retry(c.retry, fn, context.Canceled); err != nil {
		c.logger.Warn("product service unreachable, serving fallback",
			slog.Int64("product_id", productID), slog.Any("error", err))
		fallbacksServed.Inc()
		return fallbackSnapshot(productID), nil
	}

	return snapshot, nil
}

// ReduceQuantity запрашивает списание amount единиц товара.
// В отличие от чтения здесь нет fallback: молчаливый no-op списания
// разъехался бы с реальными остатками, поэтому ошибка отдаётся наверх.
func (c *Client) ReduceQuantity(ctx context.Context, productID int64, amount int) error {
	url := fmt.Sprintf("%s/products/%d/reduce-quantity?quantity=%s",
		c.baseURL, productID, strconv.Itoa(amount))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrProductUnavailable, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrProductUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: unexpected status %d", entities.ErrProductUnavailable, res.StatusCode)
	}

	return nil
}

func fallbackSnapshot(productID int64) entities.ProductSnapshot {
	return entities.ProductSnapshot{
		ID:          productID,
		Name:        "Unavailable Product",
		Description: "Product service is down. This is fallback response.",
		Price:       0,
		Quantity:    0,
	}
}
