// Package events publishes committed parcel status changes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"parcels/internal/core/domain/model/parcel"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the durable topic exchange events are published to.
const DefaultExchange = "parcels.events"

// StatusChangedMessage is the JSON body of a parcel.status_changed message.
type StatusChangedMessage struct {
	Event        string    `json:"event"`
	PackageID    string    `json:"package_id"`
	TrackingCode string    `json:"tracking_code"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	MessengerID  *string   `json:"messenger_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func toMessage(e parcel.StatusChanged) StatusChangedMessage {
	msg := StatusChangedMessage{
		Event:        e.Name(),
		PackageID:    e.ParcelID.String(),
		TrackingCode: e.TrackingCode,
		From:         e.From.String(),
		To:           e.To.String(),
		OccurredAt:   e.OccurredAt,
	}
	if e.MessengerID != nil {
		id := e.MessengerID.String()
		msg.MessengerID = &id
	}
	return msg
}

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher implements ports.EventPublisher. Messages are persistent
// and routed by event name.
type RabbitMQPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

// NewRabbitMQPublisher dials url and declares the exchange.
func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange: %w", err)
	}

	return &RabbitMQPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func newRabbitMQPublisher(ch amqpChannel, exchange string) *RabbitMQPublisher {
	return &RabbitMQPublisher{channel: ch, exchange: exchange}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, events ...parcel.StatusChanged) error {
	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		body, err := json.Marshal(toMessage(e))
		if err != nil {
			return fmt.Errorf("rabbitmq: marshal event: %w", err)
		}

		err = p.channel.PublishWithContext(ctx, p.exchange, e.Name(), false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ParcelID.String() + ":" + e.To.String(),
			Timestamp:    e.OccurredAt,
			Type:         e.Name(),
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("rabbitmq: publish %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}
	return err
}
