package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/msa-lab/order-service/internal/config"
	"github.com/msa-lab/order-service/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "order_service",
	Subsystem: "events",
	Name:      "published_total",
	Help:      "Total number of order events published to Kafka.",
}, []string{"type"})

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

type orderEventMessage struct {
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	UserID     string    `json:"user_id"`
	ItemIDs    []int64   `json:"order_item_ids"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publish пишет событие жизненного цикла заказа, ключ - id заказа,
// чтобы события одного заказа попадали в одну партицию.
func (p *kafkaPublisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(orderEventMessage{
		Type:       string(event.Type),
		OrderID:    event.OrderID,
		UserID:     event.UserID,
		ItemIDs:    event.ItemIDs,
		Status:     string(event.Status),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}

	eventsPublished.WithLabelValues(string(event.Type)).Inc()
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
