package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ScoreUpdateMessage is the integration-feed copy of a committed score
// change, published for downstream CRM consumers.
type ScoreUpdateMessage struct {
	LeadID      int    `json:"lead_id"`
	Email       string `json:"email"`
	NewScore    int    `json:"new_score"`
	ScoreChange int    `json:"score_change"`
	Reason      string `json:"reason"`
}

type QueueProducerInterface interface {
	PublishScoreUpdate(ctx context.Context, msg ScoreUpdateMessage) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishScoreUpdate(ctx context.Context, msg ScoreUpdateMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal score update: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		ScoreRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.New().String(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish score update: %w", err)
	}

	return nil
}
