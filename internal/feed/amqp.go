package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ibeloyar/courierdesk/internal/model"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	DispatchExchange = "rider_dispatch"
	dispatchKind     = "topic"
)

var ErrInvalidEnvelope = errors.New("invalid dispatch envelope")

// RoutingKey - ключ привязки очереди курьера к обменнику диспетчерской
func RoutingKey(riderID int64) string {
	return fmt.Sprintf("rider.%d.#", riderID)
}

// AMQPSource - лента курьера поверх RabbitMQ. Сообщения подтверждаются
// автоматически, то есть доставка не более одного раза.
type AMQPSource struct {
	url     string
	riderID int64
	bus     *Bus
	lg      *zap.SugaredLogger

	conn *amqp.Connection
	ch   *amqp.Channel

	connected atomic.Bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewAMQPSource(url string, riderID int64, bus *Bus, lg *zap.SugaredLogger) *AMQPSource {
	return &AMQPSource{
		url:     url,
		riderID: riderID,
		bus:     bus,
		lg:      lg,
	}
}

func (s *AMQPSource) Start(ctx context.Context) error {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	deliveries, err := s.declareAndConsume(ch)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	s.conn = conn
	s.ch = ch

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.connected.Store(true)
	s.bus.Emit(model.Event{Type: model.EventConnect})
	s.lg.Infof("amqp feed connected for rider %d", s.riderID)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.consume(ctx, deliveries)
	}()

	return nil
}

func (s *AMQPSource) declareAndConsume(ch *amqp.Channel) (<-chan amqp.Delivery, error) {
	if err := ch.ExchangeDeclare(DispatchExchange, dispatchKind, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	// очередь живёт ровно столько, сколько сессия курьера
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, RoutingKey(s.riderID), DispatchExchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	deliveries, err := ch.Consume(q.Name, s.consumerTag(), true, true, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume: %w", err)
	}

	return deliveries, nil
}

func (s *AMQPSource) consume(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				s.lg.Warnf("amqp deliveries closed for rider %d", s.riderID)
				s.connected.Store(false)
				return
			}

			ev, err := DecodeEvent(d.Body)
			if err != nil {
				s.lg.Errorf("drop dispatch message %s: %v", d.MessageId, err)
				continue
			}
			if ev.ID == "" {
				ev.ID = d.MessageId
			}

			s.bus.Emit(ev)
		}
	}
}

func (s *AMQPSource) Connected() bool {
	return s.connected.Load()
}

func (s *AMQPSource) Close() error {
	var errs []error

	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}

		if s.ch != nil {
			if err := s.ch.Cancel(s.consumerTag(), false); err != nil {
				errs = append(errs, err)
			}
			if err := s.ch.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		if s.conn != nil {
			if err := s.conn.Close(); err != nil {
				errs = append(errs, err)
			}
		}

		s.wg.Wait()

		s.connected.Store(false)
		s.bus.Emit(model.Event{Type: model.EventDisconnect})
		s.lg.Infof("amqp feed disconnected for rider %d", s.riderID)
	})

	return errors.Join(errs...)
}

func (s *AMQPSource) consumerTag() string {
	return fmt.Sprintf("courierdesk-rider-%d", s.riderID)
}

// DecodeEvent - разобрать конверт диспетчерского сообщения
func DecodeEvent(body []byte) (model.Event, error) {
	var ev model.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return ev, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	if ev.Type == "" {
		return ev, fmt.Errorf("%w: missing type", ErrInvalidEnvelope)
	}

	if ev.Type == model.EventJobProposed {
		if ev.Assignment == nil {
			return ev, fmt.Errorf("%w: job proposal without assignment", ErrInvalidEnvelope)
		}
		if err := ev.Assignment.Validate(); err != nil {
			return ev, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
		}
	}

	return ev, nil
}
