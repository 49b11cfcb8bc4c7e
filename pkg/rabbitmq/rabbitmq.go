package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	mu       sync.Mutex // amqp.Channel is not safe for concurrent publishing
}

// Config holds RabbitMQ connection details. Events are published to the
// fanout Exchange, so every bound queue receives its own copy. Queue names the
// queue this process consumes from; leave it empty to only publish.
type Config struct {
	URL      string
	Exchange string
	Queue    string
}

func (c Config) validate() error {
	if c.URL == "" {
		return fmt.Errorf("RabbitMQ URL is required")
	}
	if c.Exchange == "" {
		return fmt.Errorf("RabbitMQ exchange name is required")
	}
	return nil
}

// Event is the envelope every entity event travels in.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// NewClient connects to RabbitMQ, declares the event exchange and, when a
// queue is configured, declares it and binds it to the exchange.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	client := &Client{
		conn:     conn,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
	}
	if client.channel, err = conn.Channel(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := client.declare(); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Printf("RabbitMQ client connected to exchange %s", cfg.Exchange)
	return client, nil
}

func (c *Client) declare() error {
	err := c.channel.ExchangeDeclare(
		c.exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", c.exchange, err)
	}
	if c.queue == "" {
		return nil
	}

	_, err = c.channel.QueueDeclare(
		c.queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", c.queue, err)
	}
	// Fanout exchanges ignore the routing key.
	if err := c.channel.QueueBind(c.queue, "", c.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s to %s: %w", c.queue, c.exchange, err)
	}
	return nil
}

// Close shuts the channel before the connection and reports both failures.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// EncodeEvent wraps data in a new Event envelope and marshals it to JSON.
func EncodeEvent(eventType string, data interface{}) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return json.Marshal(Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       payload,
	})
}

// DecodeEvent parses an Event envelope.
func DecodeEvent(body []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	if event.Type == "" {
		return Event{}, fmt.Errorf("event %q has no type", event.ID)
	}
	return event, nil
}

// PublishEvent publishes an entity event to the event exchange as a
// persistent JSON message.
func (c *Client) PublishEvent(eventType string, data interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := EncodeEvent(eventType, data)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.Publish(
		c.exchange,
		eventType, // routing key, informational on a fanout exchange
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         eventType,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}

// ConsumeEvents starts a goroutine that hands every message on the client's
// own queue to handler. Messages are acked on success; a message the handler
// rejects is dropped rather than requeued, since redelivery would fail again.
func (c *Client) ConsumeEvents(handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}
	if c.queue == "" {
		return fmt.Errorf("no RabbitMQ queue configured for consumption")
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf(" [*] Waiting for events on %s", c.queue)

	go func() {
		for msg := range msgs {
			if err := handler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				if nackErr := msg.Nack(false, false); nackErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, nackErr)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
			}
		}
	}()

	return nil
}
