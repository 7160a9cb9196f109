package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.leadscore"
	DLXName      = "ex.leadscore.dlx"

	// EventQueueName receives event submissions from external producers and
	// feeds them through the same ingest pipeline the HTTP boundary uses.
	EventQueueName = "q.lead-events"
	DLQName        = "q.lead-events.dlq"

	EventRoutingKey = "k.event"

	// ScoreRoutingKey carries committed score changes out to downstream
	// consumers. No queue is declared here; consumers bind their own.
	ScoreRoutingKey = "k.score-update"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel failed: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(DLQName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = ch.QueueBind(DLQName, EventRoutingKey, DLXName, false, nil)
	if err != nil {
		return err
	}

	err = ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	// Rejected event submissions land on the DLQ instead of clogging the
	// intake queue.
	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": EventRoutingKey,
	}

	_, err = ch.QueueDeclare(EventQueueName, true, false, false, false, args)
	if err != nil {
		return err
	}

	return ch.QueueBind(EventQueueName, EventRoutingKey, ExchangeName, false, nil)
}
