package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := New()
	received := make(chan DomainEvent, 1)

	bus.Subscribe(EventQuerySubmitted, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(QuerySubmittedEvent{Account: "0xABC", Seq: 1})

	e := waitFor(t, received)
	event, ok := e.(QuerySubmittedEvent)
	require.True(t, ok)
	assert.Equal(t, "0xABC", event.Account)
	assert.Equal(t, uint64(1), event.Seq)
}

func TestPublishOnlyMatchingType(t *testing.T) {
	bus := New()
	received := make(chan DomainEvent, 2)

	bus.Subscribe(EventFetchFailed, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(QuerySubmittedEvent{Account: "0xABC", Seq: 1})
	bus.Publish(FetchFailedEvent{Account: "0xABC", Seq: 1})

	e := waitFor(t, received)
	_, ok := e.(FetchFailedEvent)
	assert.True(t, ok)

	select {
	case extra := <-received:
		t.Fatalf("unexpected extra event: %v", extra.Type())
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMultipleSubscribersAllReceive(t *testing.T) {
	bus := New()
	first := make(chan DomainEvent, 1)
	second := make(chan DomainEvent, 1)

	bus.Subscribe(EventActivitiesLoaded, func(e DomainEvent) { first <- e })
	bus.Subscribe(EventActivitiesLoaded, func(e DomainEvent) { second <- e })

	bus.Publish(ActivitiesLoadedEvent{Account: "0xABC", Count: 3, Seq: 1})

	waitFor(t, first)
	waitFor(t, second)
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	bus := New()
	received := make(chan DomainEvent, 1)

	bus.Subscribe(EventQueryCleared, func(DomainEvent) {
		panic("boom")
	})
	bus.Subscribe(EventQueryCleared, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(QueryClearedEvent{})
	waitFor(t, received)

	// The bus still dispatches after a handler panicked
	bus.Publish(QueryClearedEvent{})
	waitFor(t, received)
}
