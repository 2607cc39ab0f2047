package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_InvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var seen []EventType
	d.Subscribe(EventOrderCreated, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventOrderCreated, SubjectID: "o1"})
	assert.NoError(t, err)
	assert.Equal(t, []EventType{EventOrderCreated}, seen)
}

func TestDispatcher_HandlerFailureDoesNotPropagate(t *testing.T) {
	d := NewInMemoryDispatcher()
	called := 0
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		called++
		return errors.New("smtp down")
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		called++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserRegistered})
	assert.NoError(t, err)
	assert.Equal(t, 2, called, "later handlers still run after a failure")
}

func TestDispatcher_IgnoresUnrelatedEvents(t *testing.T) {
	d := NewInMemoryDispatcher()
	called := false
	d.Subscribe(EventPaymentStatusChanged, func(context.Context, Event) error {
		called = true
		return nil
	})

	_ = d.Publish(context.Background(), Event{Type: EventOrderStatusChanged})
	assert.False(t, called)
}
