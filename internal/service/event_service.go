package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const eventBufferSize = 16

// DomainEvent describes one accepted mutation. Events drive the dashboard
// stream and, when configured, are mirrored to NATS for external consumers.
type DomainEvent struct {
	Section    string    `json:"section"`
	Action     string    `json:"action"`
	StudentID  string    `json:"student_id"`
	Reference  string    `json:"reference,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher fans accepted mutation events out to in-process subscribers
// and an optional NATS subject tree.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent)
	Subscribe() (<-chan DomainEvent, func())
}

type eventPublisher struct {
	nats        *nats.Conn
	subjectBase string
	logger      zerolog.Logger

	mu          sync.RWMutex
	subscribers map[chan DomainEvent]struct{}
}

// NewEventPublisher constructs an event publisher. The NATS connection may be
// nil, in which case events stay in-process.
func NewEventPublisher(natsConn *nats.Conn, subjectBase string, logger zerolog.Logger) EventPublisher {
	if subjectBase == "" {
		subjectBase = "campus.events"
	}

	return &eventPublisher{
		nats:        natsConn,
		subjectBase: subjectBase,
		logger:      logger.With().Str("component", "event_publisher").Logger(),
		subscribers: make(map[chan DomainEvent]struct{}),
	}
}

func (p *eventPublisher) Publish(ctx context.Context, event DomainEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	p.mu.RLock()
	for subscriber := range p.subscribers {
		select {
		case subscriber <- event:
		default:
			// slow subscriber, drop rather than block the mutation path
		}
	}
	p.mu.RUnlock()

	if p.nats == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to marshal domain event")
		return
	}

	subject := p.subjectBase + "." + event.Section
	if err := p.nats.Publish(subject, payload); err != nil {
		p.logger.Warn().Err(err).Str("subject", subject).Msg("failed to publish domain event")
	}
}

func (p *eventPublisher) Subscribe() (<-chan DomainEvent, func()) {
	channel := make(chan DomainEvent, eventBufferSize)

	p.mu.Lock()
	p.subscribers[channel] = struct{}{}
	p.mu.Unlock()

	cancel := func() {
		p.mu.Lock()
		if _, ok := p.subscribers[channel]; ok {
			delete(p.subscribers, channel)
			close(channel)
		}
		p.mu.Unlock()
	}

	return channel, cancel
}
