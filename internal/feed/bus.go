// Package feed доставляет события диспетчерской ленты (предложения заказов,
// статусы заказов) подписчикам одной сессии курьера.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/courierdesk/internal/model"
)

// AnyEvent - подписка на все события шины
const AnyEvent = "*"

type Handler func(ev model.Event)

type Subscription interface {
	Unsubscribe()
}

// Source - источник событий ленты: таймерный симулятор или брокер сообщений.
type Source interface {
	Start(ctx context.Context) error
	Connected() bool
	Close() error
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus - шина именованных событий. Обработчики вызываются синхронно,
// не более одного раза на событие, порядок между типами не гарантирован.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]subscriber

	now func() time.Time
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]subscriber),
		now:      time.Now,
	}
}

func (b *Bus) Subscribe(name string, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[name] = append(b.handlers[name], subscriber{id: b.nextID, handler: h})

	return &subscription{bus: b, name: name, id: b.nextID}
}

// SubscribeJobProposals - подписка на предложения новых заказов
func (b *Bus) SubscribeJobProposals(fn func(a model.Assignment)) Subscription {
	return b.Subscribe(model.EventJobProposed, func(ev model.Event) {
		if ev.Assignment != nil {
			fn(*ev.Assignment)
		}
	})
}

// SubscribeOrderUpdates - подписка на информационные уведомления по заказам
func (b *Bus) SubscribeOrderUpdates(fn func(u model.OrderUpdate)) Subscription {
	names := []string{
		model.EventJobAssigned,
		model.EventOrderPickedUp,
		model.EventOrderOTPIssued,
		model.EventCustomerArrived,
	}

	subs := make(multiSubscription, 0, len(names))
	for _, name := range names {
		subs = append(subs, b.Subscribe(name, func(ev model.Event) {
			if ev.Update != nil {
				fn(*ev.Update)
			}
		}))
	}

	return subs
}

func (b *Bus) Emit(ev model.Event) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = b.now()
	}

	b.mu.RLock()
	targets := make([]subscriber, 0, len(b.handlers[ev.Type])+len(b.handlers[AnyEvent]))
	targets = append(targets, b.handlers[ev.Type]...)
	targets = append(targets, b.handlers[AnyEvent]...)
	b.mu.RUnlock()

	for _, s := range targets {
		s.handler(ev)
	}
}

// EmitUpdate - отправить уведомление по заказу под его собственным типом
func (b *Bus) EmitUpdate(u model.OrderUpdate) {
	b.Emit(model.Event{
		Type:   u.Type,
		Update: &u,
		At:     u.Timestamp,
	})
}

func (b *Bus) unsubscribe(name string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[name]
	for i, s := range subs {
		if s.id == id {
			b.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}

	if len(b.handlers[name]) == 0 {
		delete(b.handlers, name)
	}
}

func (b *Bus) subscribers(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[name])
}

type subscription struct {
	once sync.Once
	bus  *Bus
	name string
	id   uint64
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.unsubscribe(s.name, s.id)
	})
}

type multiSubscription []Subscription

func (m multiSubscription) Unsubscribe() {
	for _, s := range m {
		s.Unsubscribe()
	}
}
