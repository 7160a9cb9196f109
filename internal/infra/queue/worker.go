package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventMessage is an event submission arriving over AMQP. Same shape as the
// HTTP ingest body.
type EventMessage struct {
	EventType string          `json:"eventType"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	LeadID    int             `json:"leadId,omitempty"`
	Email     string          `json:"email,omitempty"`
}

// EventIngester is whatever can run a submission through the scoring
// pipeline. Keeps the worker decoupled from the use case package.
type EventIngester interface {
	Ingest(ctx context.Context, msg EventMessage) error
}

type Worker struct {
	Channel  *amqp.Channel
	Ingester EventIngester
}

func NewWorker(ch *amqp.Channel, ingester EventIngester) *Worker {
	return &Worker{
		Channel:  ch,
		Ingester: ingester,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	log.Printf("[worker] consuming event submissions from %q", queueName)

	for d := range msgs {
		var msg EventMessage
		if err := json.Unmarshal(d.Body, &msg); err != nil {
			log.Printf("[worker] invalid event message, rejecting: %s", err)
			// Malformed message goes to the DLQ, not back on the queue.
			d.Nack(false, false)
			continue
		}

		if err := w.Ingester.Ingest(context.Background(), msg); err != nil {
			log.Printf("[worker] ingest failed for %q: %s", msg.EventType, err)
			d.Nack(false, false)
		} else {
			d.Ack(false)
		}
	}
}
