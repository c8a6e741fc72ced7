package feed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ibeloyar/courierdesk/internal/model"
	"go.uber.org/zap"
)

const (
	DefaultConnectDelay        = 1 * time.Second
	DefaultJobProposalInterval = 45 * time.Second
	DefaultOrderUpdateInterval = 20 * time.Second
	DefaultJobProposalChance   = 0.5
	DefaultOrderUpdateChance   = 0.3
)

type Randomizer interface {
	Float64() float64
	IntN(n int) int
}

type SimulatorConfig struct {
	ConnectDelay        time.Duration
	JobProposalInterval time.Duration
	OrderUpdateInterval time.Duration
	JobProposalChance   float64
	OrderUpdateChance   float64
}

func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		ConnectDelay:        DefaultConnectDelay,
		JobProposalInterval: DefaultJobProposalInterval,
		OrderUpdateInterval: DefaultOrderUpdateInterval,
		JobProposalChance:   DefaultJobProposalChance,
		OrderUpdateChance:   DefaultOrderUpdateChance,
	}
}

// Simulator - таймерная имитация диспетчерской ленты для одного курьера
type Simulator struct {
	riderID int64
	bus     *Bus
	cfg     SimulatorConfig
	lg      *zap.SugaredLogger

	rndMu sync.Mutex
	rnd   Randomizer

	connected atomic.Bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once

	now func() time.Time
}

func NewSimulator(riderID int64, bus *Bus, cfg SimulatorConfig, lg *zap.SugaredLogger) *Simulator {
	if cfg.JobProposalInterval <= 0 {
		cfg.JobProposalInterval = DefaultJobProposalInterval
	}
	if cfg.OrderUpdateInterval <= 0 {
		cfg.OrderUpdateInterval = DefaultOrderUpdateInterval
	}

	return &Simulator{
		riderID: riderID,
		bus:     bus,
		cfg:     cfg,
		lg:      lg,
		rnd:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(riderID))),
		now:     time.Now,
	}
}

// WithRand - подменить источник случайности (для тестов)
func (s *Simulator) WithRand(r Randomizer) *Simulator {
	s.rnd = r
	return s
}

func (s *Simulator) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()

	return nil
}

func (s *Simulator) Connected() bool {
	return s.connected.Load()
}

// Close - остановить таймеры и отметить отключение
func (s *Simulator) Close() error {
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.wg.Wait()

		s.connected.Store(false)
		s.bus.Emit(model.Event{Type: model.EventDisconnect})
		s.lg.Infof("mock feed disconnected for rider %d", s.riderID)
	})

	return nil
}

func (s *Simulator) run(ctx context.Context) {
	connectTimer := time.NewTimer(s.cfg.ConnectDelay)
	defer connectTimer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-connectTimer.C:
	}

	s.connected.Store(true)
	s.bus.Emit(model.Event{Type: model.EventConnect})
	s.lg.Infof("mock feed connected, joined room rider:%d", s.riderID)

	jobTicker := time.NewTicker(s.cfg.JobProposalInterval)
	defer jobTicker.Stop()

	updateTicker := time.NewTicker(s.cfg.OrderUpdateInterval)
	defer updateTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-jobTicker.C:
			if s.Connected() && s.roll(s.cfg.JobProposalChance) {
				s.proposeJob()
			}
		case <-updateTicker.C:
			if s.Connected() && s.roll(s.cfg.OrderUpdateChance) {
				s.emitOrderUpdate()
			}
		}
	}
}

func (s *Simulator) proposeJob() {
	jobs := jobTemplates(s.now())

	s.rndMu.Lock()
	job := jobs[s.rnd.IntN(len(jobs))]
	s.rndMu.Unlock()

	s.lg.Debugf("new job proposal %s for rider %d", job.ID, s.riderID)
	s.bus.Emit(model.Event{Type: model.EventJobProposed, Assignment: &job})
}

func (s *Simulator) emitOrderUpdate() {
	updates := orderUpdateTemplates(s.now())

	s.rndMu.Lock()
	update := updates[s.rnd.IntN(len(updates))]
	s.rndMu.Unlock()

	s.lg.Debugf("order update %s for rider %d", update.Type, s.riderID)
	s.bus.EmitUpdate(update)
}

// roll - true с вероятностью chance
func (s *Simulator) roll(chance float64) bool {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()

	return s.rnd.Float64() > 1-chance
}

func jobTemplates(now time.Time) []model.Assignment {
	ms := now.UnixMilli()

	return []model.Assignment{
		{
			ID:              fmt.Sprintf("job_%d", ms),
			StoreType:       "Grocery Store",
			StoreName:       "FreshMart Downtown",
			CustomerName:    "Sarah Johnson",
			Items:           12,
			Distance:        "2.3 km",
			EstimatedTime:   "25 min",
			Payout:          45.50,
			PickupAddress:   "123 Main St, Downtown",
			DeliveryAddress: "456 Oak Ave, Midtown",
			Urgency:         model.UrgencyNormal,
			Timestamp:       now,
		},
		{
			ID:              fmt.Sprintf("job_%d", ms+1),
			StoreType:       "Restaurant",
			StoreName:       "Burger Palace",
			CustomerName:    "Mike Chen",
			Items:           3,
			Distance:        "1.8 km",
			EstimatedTime:   "20 min",
			Payout:          38.75,
			PickupAddress:   "789 Food Court, Mall Plaza",
			DeliveryAddress: "321 Pine St, Westside",
			Urgency:         model.UrgencyHigh,
			Timestamp:       now,
		},
		{
			ID:              fmt.Sprintf("job_%d", ms+2),
			StoreType:       "Pharmacy",
			StoreName:       "HealthPlus Pharmacy",
			CustomerName:    "Emma Wilson",
			Items:           2,
			Distance:        "3.1 km",
			EstimatedTime:   "30 min",
			Payout:          52.25,
			PickupAddress:   "555 Health Ave, Medical District",
			DeliveryAddress: "888 Elm St, Suburbs",
			Urgency:         model.UrgencyNormal,
			Timestamp:       now,
		},
	}
}

func orderUpdateTemplates(now time.Time) []model.OrderUpdate {
	return []model.OrderUpdate{
		{
			Type:      model.EventOrderPickedUp,
			OrderID:   "order_123",
			Message:   "Order has been picked up from store",
			Timestamp: now,
		},
		{
			Type:      model.EventOrderOTPIssued,
			OrderID:   "order_123",
			OTP:       "123456",
			Message:   "OTP has been issued for delivery verification",
			Timestamp: now,
		},
		{
			Type:         model.EventJobAssigned,
			AssignmentID: "assign_456",
			Message:      "New delivery assignment received",
			Timestamp:    now,
		},
	}
}
