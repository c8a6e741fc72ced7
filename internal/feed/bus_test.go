package feed

import (
	"testing"
	"time"

	"github.com/ibeloyar/courierdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitToNamedSubscriber(t *testing.T) {
	bus := NewBus()

	var got []model.Event
	bus.Subscribe(model.EventCustomerArrived, func(ev model.Event) {
		got = append(got, ev)
	})

	bus.Emit(model.Event{Type: model.EventCustomerArrived})
	bus.Emit(model.Event{Type: model.EventOrderPickedUp})

	require.Len(t, got, 1)
	assert.Equal(t, model.EventCustomerArrived, got[0].Type)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].At.IsZero())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	sub := bus.Subscribe(model.EventConnect, func(model.Event) { calls++ })

	bus.Emit(model.Event{Type: model.EventConnect})
	sub.Unsubscribe()
	sub.Unsubscribe()
	bus.Emit(model.Event{Type: model.EventConnect})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.subscribers(model.EventConnect))
}

func TestBus_UnsubscribeKeepsOthers(t *testing.T) {
	bus := NewBus()

	var first, second int
	sub := bus.Subscribe(model.EventConnect, func(model.Event) { first++ })
	bus.Subscribe(model.EventConnect, func(model.Event) { second++ })

	sub.Unsubscribe()
	bus.Emit(model.Event{Type: model.EventConnect})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestBus_AnyEvent(t *testing.T) {
	bus := NewBus()

	var types []string
	bus.Subscribe(AnyEvent, func(ev model.Event) { types = append(types, ev.Type) })

	bus.Emit(model.Event{Type: model.EventConnect})
	bus.Emit(model.Event{Type: model.EventJobProposed, Assignment: &model.Assignment{ID: "job_1"}})

	assert.Equal(t, []string{model.EventConnect, model.EventJobProposed}, types)
}

func TestBus_SubscribeJobProposals(t *testing.T) {
	bus := NewBus()

	var got []model.Assignment
	bus.SubscribeJobProposals(func(a model.Assignment) { got = append(got, a) })

	bus.Emit(model.Event{Type: model.EventJobProposed, Assignment: &model.Assignment{ID: "job_1", Payout: 42.5}})
	// без заказа событие пропускается
	bus.Emit(model.Event{Type: model.EventJobProposed})

	require.Len(t, got, 1)
	assert.Equal(t, "job_1", got[0].ID)
}

func TestBus_SubscribeOrderUpdates(t *testing.T) {
	bus := NewBus()

	var got []string
	sub := bus.SubscribeOrderUpdates(func(u model.OrderUpdate) { got = append(got, u.Type) })

	now := time.Now()
	bus.EmitUpdate(model.OrderUpdate{Type: model.EventOrderPickedUp, Timestamp: now})
	bus.EmitUpdate(model.OrderUpdate{Type: model.EventOrderOTPIssued, OTP: "123456", Timestamp: now})
	bus.EmitUpdate(model.OrderUpdate{Type: model.EventJobAssigned, Timestamp: now})
	bus.Emit(model.Event{Type: model.EventJobProposed, Assignment: &model.Assignment{ID: "x"}})

	assert.Equal(t, []string{model.EventOrderPickedUp, model.EventOrderOTPIssued, model.EventJobAssigned}, got)

	sub.Unsubscribe()
	bus.EmitUpdate(model.OrderUpdate{Type: model.EventOrderPickedUp, Timestamp: now})
	assert.Len(t, got, 3)
}
