package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/rbac"
)

func TestEventPublisherDeliversToSubscribers(t *testing.T) {
	publisher := NewEventPublisher(nil, "", testLogger())

	events, cancel := publisher.Subscribe()
	defer cancel()

	publisher.Publish(context.Background(), DomainEvent{Section: rbac.SectionFees, Action: "payment", StudentID: "STU001"})

	select {
	case event := <-events:
		require.Equal(t, rbac.SectionFees, event.Section)
		require.Equal(t, "STU001", event.StudentID)
		require.False(t, event.OccurredAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected event delivery")
	}
}

func TestEventPublisherDropsWhenSubscriberIsFull(t *testing.T) {
	publisher := NewEventPublisher(nil, "", testLogger())

	events, cancel := publisher.Subscribe()
	defer cancel()

	for i := 0; i < eventBufferSize+5; i++ {
		publisher.Publish(context.Background(), DomainEvent{Section: rbac.SectionLibrary, Action: "BORROW"})
	}

	require.Len(t, events, eventBufferSize)
}

func TestEventPublisherCancelClosesChannel(t *testing.T) {
	publisher := NewEventPublisher(nil, "", testLogger())

	events, cancel := publisher.Subscribe()
	cancel()
	cancel() // idempotent

	_, open := <-events
	require.False(t, open)

	// publishing after cancel must not panic
	publisher.Publish(context.Background(), DomainEvent{Section: rbac.SectionExams})
}
