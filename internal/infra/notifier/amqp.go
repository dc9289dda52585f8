package notifier

import (
	"context"
	"encoding/json"

	"studio-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingKeyGranted = "access.granted"
	routingKeyRevoked = "access.revoked"
)

// AMQPNotifier publishes access events to a durable topic exchange.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to declare exchange")
	}

	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

func (n *AMQPNotifier) AccessGranted(ctx context.Context, event AccessEvent) error {
	return n.publish(ctx, routingKeyGranted, event)
}

func (n *AMQPNotifier) AccessRevoked(ctx context.Context, event AccessEvent) error {
	return n.publish(ctx, routingKeyRevoked, event)
}

func (n *AMQPNotifier) publish(ctx context.Context, key string, event AccessEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal access event")
	}

	err = n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish access event")
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
