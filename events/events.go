// Package events publishes site activity (listing changes, contact
// submissions) to RabbitMQ for downstream consumers such as CRM sync.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const Version = 1

const (
	PropertyCreated  = "property.created"
	PropertyUpdated  = "property.updated"
	PropertyDeleted  = "property.deleted"
	ContactSubmitted = "contact.submitted"
)

// Message is the envelope written to the exchange.
type Message struct {
	Version    int         `json:"version"`
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

type Publisher interface {
	Publish(ctx context.Context, event string, data interface{}) error
	Close() error
}

// Nop drops every event. It is used when AMQP_URL is unset.
type Nop struct{}

func (Nop) Publish(context.Context, string, interface{}) error { return nil }

func (Nop) Close() error { return nil }

// DefaultDialTimeout bounds connecting to the broker, handshake included.
const DefaultDialTimeout = 2 * time.Second

// AMQPPublisher publishes to a topic exchange with the event name as routing
// key. The connection is dialed on first use and redialed after it closes.
// Concurrent publishers share one dial, made without holding mu.
type AMQPPublisher struct {
	url         string
	exchange    string
	logger      *zap.Logger
	dialTimeout time.Duration
	dials       singleflight.Group

	mu         sync.Mutex
	connection *amqp.Connection
	channel    *amqp.Channel
}

func NewAMQPPublisher(url, exchange string, logger *zap.Logger) *AMQPPublisher {
	return &AMQPPublisher{url: url, exchange: exchange, logger: logger, dialTimeout: DefaultDialTimeout}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event string, data interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(Message{Version: Version, Event: event, OccurredAt: time.Now().UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("encode %s: %w", event, err)
	}

	ch, err := p.channelFor(ctx)
	if err != nil {
		return err
	}
	err = ch.Publish(
		p.exchange,
		event,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.mu.Lock()
		if p.channel == ch {
			p.reset()
		}
		p.mu.Unlock()
		return fmt.Errorf("publish %s: %w", event, err)
	}
	p.logger.Debug("event published", zap.String("event", event))
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.connection == nil {
		return nil
	}
	err := p.connection.Close()
	p.connection, p.channel = nil, nil
	return err
}

// current returns the open channel, or nil once the connection has dropped.
func (p *AMQPPublisher) current() *amqp.Channel {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.connection != nil && p.connection.IsClosed() {
		p.reset()
	}
	return p.channel
}

func (p *AMQPPublisher) channelFor(ctx context.Context) (*amqp.Channel, error) {
	if ch := p.current(); ch != nil {
		return ch, nil
	}
	timeout := p.dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}

	res := p.dials.DoChan("connect", func() (interface{}, error) {
		return p.connect(timeout)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-res:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*amqp.Channel), nil
	}
}

func (p *AMQPPublisher) connect(timeout time.Duration) (*amqp.Channel, error) {
	if ch := p.current(); ch != nil {
		return ch, nil
	}
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	p.mu.Lock()
	p.connection, p.channel = conn, ch
	p.mu.Unlock()
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.connection != nil {
		_ = p.connection.Close()
	}
	p.connection, p.channel = nil, nil
}

// Recorder keeps published messages in memory.
type Recorder struct {
	mu       sync.Mutex
	Messages []Message
}

func (r *Recorder) Publish(_ context.Context, event string, data interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Message{Version: Version, Event: event, Data: data})
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		out = append(out, m.Event)
	}
	return out
}
