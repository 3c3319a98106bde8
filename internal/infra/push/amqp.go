package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// AMQPSender publishes push payloads to a RabbitMQ exchange consumed by the
// delivery workers.
type AMQPSender struct {
	channel    *amqp.Channel
	conn       *amqp.Connection
	exchange   string
	routingKey string
}

type pushMessage struct {
	UserID string            `json:"user_id"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
	SentAt time.Time         `json:"sent_at"`
}

func NewAMQPSender(url, exchange, routingKey string) (*AMQPSender, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AMQPSender{
		channel:    channel,
		conn:       conn,
		exchange:   exchange,
		routingKey: routingKey,
	}, nil
}

func (s *AMQPSender) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	payload, err := json.Marshal(pushMessage{
		UserID: userID,
		Title:  title,
		Body:   body,
		Data:   data,
		SentAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = s.channel.PublishWithContext(
		pubCtx,
		s.exchange,
		s.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         payload,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish push message: %w", err)
	}
	return nil
}

func (s *AMQPSender) Close() error {
	if err := s.channel.Close(); err != nil {
		s.conn.Close()
		return err
	}
	return s.conn.Close()
}
