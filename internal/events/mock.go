package events

import (
	"context"
	"log/slog"
	"sync"
)

// MockEventPublisher records events instead of sending them; used in tests
// and as the fallback when no brokers are configured.
type MockEventPublisher struct {
	logger *slog.Logger

	mu        sync.Mutex
	published []PublishedEvent
}

type PublishedEvent struct {
	Topic   string
	Payload any
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (p *MockEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	p.mu.Lock()
	p.published = append(p.published, PublishedEvent{Topic: topic, Payload: payload})
	p.mu.Unlock()

	p.logger.InfoContext(ctx, "Event published", "topic", topic)
	return nil
}

func (p *MockEventPublisher) Close() error {
	return nil
}

// Published returns a snapshot of everything published so far.
func (p *MockEventPublisher) Published() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := make([]PublishedEvent, len(p.published))
	copy(snapshot, p.published)
	return snapshot
}
