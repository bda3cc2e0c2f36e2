package event

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// Routing keys for the exam topic exchange. Consumers bind with patterns such
// as exam.attempt.* or exam.paper2.*.
const (
	AttemptStarted   = "exam.attempt.started"
	AttemptSubmitted = "exam.attempt.submitted"
	Paper2Submitted  = "exam.paper2.submitted"
	Paper2Scored     = "exam.paper2.scored"
)

// Publisher emits domain events to a durable topic exchange. A nil Publisher
// is valid and drops every event, so the service runs without a broker.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends the payload with the event type as routing key. Failures are
// logged, not returned: events are best-effort and never fail the request
// that produced them.
func (p *Publisher) Publish(eventType string, payload interface{}) {
	if p == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"type":      eventType,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"payload":   payload,
	})
	if err != nil {
		log.Printf("event %s: marshal failed: %v", eventType, err)
		return
	}

	err = p.channel.Publish(
		p.exchange,
		eventType,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Printf("event %s: publish failed: %v", eventType, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
