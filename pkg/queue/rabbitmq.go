package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"creator-hub/pkg/config"
	"creator-hub/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	CatalogExchange = "catalog"
	publishTimeout  = 5 * time.Second
)

// Client publishes and consumes catalog change events on a fanout exchange.
// Every method is safe to call on a nil *Client; publishing is then skipped.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
	mu      sync.Mutex
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareExchange(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func declareExchange(channel *amqp.Channel) error {
	err := channel.ExchangeDeclare(
		CatalogExchange, // name
		"fanout",        // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) PublishCatalogEvent(event CatalogEvent) error {
	if c == nil || c.channel == nil {
		return nil
	}

	body, err := event.Encode()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	// amqp channels are not safe for concurrent publishes.
	c.mu.Lock()
	err = c.channel.PublishWithContext(ctx,
		CatalogExchange, // exchange
		"",              // routing key, ignored by fanout
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Transient,
			Timestamp:    event.At,
		},
	)
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s for %s %s: %v", event.Type, event.Entity, event.ID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published %s for %s %s", event.Type, event.Entity, event.ID)
	return nil
}

// ConsumeCatalogEvents binds a private, server-named queue to the exchange so
// every API instance sees every event. It returns once the consumer is
// registered; delivery stops when ctx is done or the connection closes.
func (c *Client) ConsumeCatalogEvents(ctx context.Context, handler func(CatalogEvent) error) error {
	if c == nil || c.conn == nil {
		return nil
	}

	channel, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open consumer channel: %w", err)
	}

	queue, err := channel.QueueDeclare(
		"",    // name, server generated
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(queue.Name, "", CatalogExchange, false, nil); err != nil {
		channel.Close()
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := channel.Consume(
		queue.Name, // queue
		"",         // consumer
		false,      // auto-ack
		true,       // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		channel.Close()
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Consuming catalog events on %s", queue.Name)

	go func() {
		defer channel.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Warn("[RABBITMQ] Catalog event stream closed")
					return
				}
				c.handleDelivery(msg, handler)
			}
		}
	}()

	return nil
}

func (c *Client) handleDelivery(msg amqp.Delivery, handler func(CatalogEvent) error) {
	event, err := DecodeCatalogEvent(msg.Body)
	if err != nil {
		c.logger.Error("[RABBITMQ] Dropping malformed catalog event: %v, body=%s", err, string(msg.Body))
		msg.Nack(false, false)
		return
	}

	if err := handler(event); err != nil {
		c.logger.Error("[RABBITMQ] Handler failed for %s %s: %v", event.Entity, event.ID, err)
		msg.Nack(false, !msg.Redelivered)
		return
	}

	msg.Ack(false)
}
