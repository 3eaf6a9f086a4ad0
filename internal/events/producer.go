// Package events publishes inventory change events so every mutation is
// observable outside the process together with the acting user.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TypeProductCreated = "product_created"
	TypeProductUpdated = "product_updated"
	TypeProductDeleted = "product_deleted"
)

type ProductEvent struct {
	Type      string  `json:"type"`
	ProductID uint    `json:"product_id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Actor     string  `json:"actor"`
	Timestamp float64 `json:"timestamp"`
}

// Producer writes product events to a single topic. A nil *Producer is valid
// and publishes nothing, so tests and broker-less runs stay log-only.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}

	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, event ProductEvent) error {
	if p == nil {
		return nil
	}

	if event.Timestamp == 0 {
		event.Timestamp = float64(time.Now().UnixMilli()) / 1000
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.ProductID), 10)),
		Value: value,
	})
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
