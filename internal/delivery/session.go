// Package delivery ведёт заказ курьера от принятия до вручения клиенту:
// пул предложений, единственный активный заказ, проверку OTP и заработок.
package delivery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ibeloyar/courierdesk/internal/feed"
	"github.com/ibeloyar/courierdesk/internal/model"
	"github.com/ibeloyar/courierdesk/internal/otp"
	"go.uber.org/zap"
)

const DefaultCompletionDelay = 1 * time.Second

// OTPVerifier - источник истины по одноразовым кодам
type OTPVerifier interface {
	Verify(ctx context.Context, orderID, code string) (bool, error)
}

// Notifier получает исходящие события сессии
type Notifier interface {
	Emit(ev model.Event)
}

// CompletionRecorder сохраняет завершённые доставки (долговременный журнал)
type CompletionRecorder interface {
	RecordCompletion(rec model.CompletedDelivery)
}

type ProposalFeed interface {
	SubscribeJobProposals(fn func(a model.Assignment)) feed.Subscription
}

type Option func(s *Session)

func WithOTPVerifier(v OTPVerifier) Option {
	return func(s *Session) { s.verifier = v }
}

func WithCompletionDelay(d time.Duration) Option {
	return func(s *Session) { s.completionDelay = d }
}

func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

func WithRecorder(r CompletionRecorder) Option {
	return func(s *Session) { s.recorder = r }
}

func WithLogger(lg *zap.SugaredLogger) Option {
	return func(s *Session) { s.lg = lg }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithEarnings(seed model.EarningsTotals) Option {
	return func(s *Session) { s.seed = seed }
}

func WithFeedStatus(connected func() bool) Option {
	return func(s *Session) { s.feedConnected = connected }
}

// Session - состояние одного курьера. Все изменения идут под s.mu;
// уведомления и запись в журнал выполняются после снятия блокировки.
type Session struct {
	mu sync.Mutex

	riderID   int64
	pool      Pool
	order     *model.ActiveOrder
	ledger    *Ledger
	seed      model.EarningsTotals
	available bool
	location  *model.Location
	closed    bool

	feed      ProposalFeed
	proposals feed.Subscription

	pending         *time.Timer
	completionDelay time.Duration

	verifier      OTPVerifier
	notifier      Notifier
	recorder      CompletionRecorder
	feedConnected func() bool
	now           func() time.Time
	lg            *zap.SugaredLogger
}

func NewSession(riderID int64, opts ...Option) *Session {
	s := &Session{
		riderID:         riderID,
		available:       true,
		completionDelay: DefaultCompletionDelay,
		verifier:        otp.FormatVerifier{},
		now:             time.Now,
		lg:              zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.ledger = NewLedger(s.seed, s.now())

	return s
}

func (s *Session) RiderID() int64 {
	return s.riderID
}

// AttachFeed подключает ленту предложений; подписка активна только пока
// курьер доступен.
func (s *Session) AttachFeed(f ProposalFeed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.proposals != nil {
		s.proposals.Unsubscribe()
		s.proposals = nil
	}

	s.feed = f
	if s.available && !s.closed {
		s.subscribeProposalsLocked()
	}
}

func (s *Session) subscribeProposalsLocked() {
	if s.feed == nil || s.proposals != nil {
		return
	}
	s.proposals = s.feed.SubscribeJobProposals(s.proposeAssignment)
}

func (s *Session) unsubscribeProposalsLocked() {
	if s.proposals == nil {
		return
	}
	s.proposals.Unsubscribe()
	s.proposals = nil
}

// proposeAssignment - предложение из ленты; отбрасывается, если курьер
// недоступен (обработчик мог быть вызван уже после отписки).
func (s *Session) proposeAssignment(a model.Assignment) {
	if err := a.Validate(); err != nil {
		s.lg.Warnf("rider %d proposal dropped: %v", s.riderID, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.available {
		s.lg.Debugf("rider %d unavailable, proposal %s dropped", s.riderID, a.ID)
		return
	}

	s.pool.Add(a)
}

func (s *Session) AddAssignment(a model.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.ErrSessionClosed
	}

	s.pool.Add(a)
	return nil
}

func (s *Session) SetAssignments(list []model.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.ErrSessionClosed
	}

	s.pool.Set(list)
	return nil
}

func (s *Session) Assignments() []model.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pool.List()
}

// AcceptAssignment переносит заказ из пула в активный. Пока есть активный
// заказ, новый принять нельзя.
func (s *Session) AcceptAssignment(id string) (model.ActiveOrder, error) {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return model.ActiveOrder{}, model.ErrSessionClosed
	}

	if s.order != nil {
		s.mu.Unlock()
		return model.ActiveOrder{}, model.ErrOrderAlreadyActive
	}

	a, ok := s.pool.Remove(id)
	if !ok {
		s.mu.Unlock()
		return model.ActiveOrder{}, model.ErrAssignmentNotFound
	}

	s.order = &model.ActiveOrder{
		Assignment: a,
		Status:     model.OrderStatusAccepted,
		AcceptedAt: s.now(),
	}
	order := *s.order
	s.mu.Unlock()

	s.lg.Infof("rider %d accepted assignment %s", s.riderID, id)
	s.notify(model.EventJobAssigned, order)

	return order, nil
}

// MarkPickedUp - заказ забран из магазина, курьер в пути (accepted -> en_route)
func (s *Session) MarkPickedUp() (model.ActiveOrder, error) {
	return s.advance(model.OrderStatusAccepted, model.OrderStatusEnRoute, model.EventOrderPickedUp)
}

// MarkArrived - курьер у клиента (en_route -> arrived_customer)
func (s *Session) MarkArrived() (model.ActiveOrder, error) {
	return s.advance(model.OrderStatusEnRoute, model.OrderStatusArrivedCustomer, model.EventCustomerArrived)
}

func (s *Session) advance(from, to model.OrderStatus, eventType string) (model.ActiveOrder, error) {
	s.mu.Lock()

	if err := s.checkStatusLocked(from, to); err != nil {
		s.mu.Unlock()
		return model.ActiveOrder{}, err
	}

	s.order.Status = to
	s.order.UpdatedAt = s.now()
	order := *s.order
	s.mu.Unlock()

	s.lg.Infof("rider %d order %s: %s -> %s", s.riderID, order.ID, from, to)
	s.notify(eventType, order)

	return order, nil
}

func (s *Session) checkStatusLocked(from, to model.OrderStatus) error {
	if s.closed {
		return model.ErrSessionClosed
	}
	if s.order == nil {
		return model.ErrNoActiveOrder
	}
	if s.order.Status != from {
		return &model.TransitionError{From: s.order.Status, To: to}
	}
	return nil
}

// VerifyOTP проверяет код клиента. Неверный формат - (false, nil) без
// изменения состояния. При успехе заказ сразу получает статус delivered,
// а начисление заработка выполняется через completionDelay.
func (s *Session) VerifyOTP(ctx context.Context, code string) (bool, error) {
	if !otp.ValidFormat(code) {
		return false, nil
	}

	s.mu.Lock()
	if err := s.checkStatusLocked(model.OrderStatusArrivedCustomer, model.OrderStatusDelivered); err != nil {
		s.mu.Unlock()
		return false, err
	}
	orderID := s.order.ID
	s.mu.Unlock()

	ok, err := s.verifier.Verify(ctx, orderID, code)
	if err != nil {
		return false, fmt.Errorf("verify otp: %w", err)
	}
	if !ok {
		s.lg.Infof("rider %d order %s: otp rejected", s.riderID, orderID)
		return false, nil
	}

	s.mu.Lock()
	// пока шла проверка, состояние могло измениться
	if err := s.checkStatusLocked(model.OrderStatusArrivedCustomer, model.OrderStatusDelivered); err != nil {
		s.mu.Unlock()
		return false, err
	}
	if s.order.ID != orderID {
		s.mu.Unlock()
		return false, model.ErrNoActiveOrder
	}

	s.order.Status = model.OrderStatusDelivered
	s.order.UpdatedAt = s.now()
	order := *s.order
	s.pending = time.AfterFunc(s.completionDelay, s.completeDelivery)
	s.mu.Unlock()

	s.lg.Infof("rider %d order %s delivered", s.riderID, orderID)
	s.notify(model.EventOrderDelivered, order)

	return true, nil
}

// completeDelivery начисляет заработок и освобождает курьера
func (s *Session) completeDelivery() {
	s.mu.Lock()
	s.pending = nil

	if s.order == nil || s.order.Status != model.OrderStatusDelivered {
		s.mu.Unlock()
		return
	}

	order := *s.order
	rec := s.ledger.Record(s.riderID, order, s.now())
	s.order = nil
	s.mu.Unlock()

	if s.recorder != nil {
		s.recorder.RecordCompletion(rec)
	}

	s.lg.Infof("rider %d order %s completed, earned %.2f", s.riderID, order.ID, rec.Earnings)
	s.notify(model.EventOrderCompleted, order)
}

// ToggleAvailability переключает доступность и (от)подписывает курьера
// от ленты предложений.
func (s *Session) ToggleAvailability() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.available, model.ErrSessionClosed
	}

	s.available = !s.available
	if s.available {
		s.subscribeProposalsLocked()
	} else {
		s.unsubscribeProposalsLocked()
	}

	s.lg.Infof("rider %d availability: %t", s.riderID, s.available)
	return s.available, nil
}

func (s *Session) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.available
}

func (s *Session) UpdateLocation(lat, lng float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.ErrSessionClosed
	}

	s.location = &model.Location{Lat: lat, Lng: lng, UpdatedAt: s.now()}
	if s.order != nil {
		s.lg.Debugf("rider %d location %.6f,%.6f on order %s", s.riderID, lat, lng, s.order.ID)
	}

	return nil
}

func (s *Session) CurrentOrder() (model.ActiveOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.order == nil {
		return model.ActiveOrder{}, false
	}
	return *s.order, true
}

func (s *Session) Earnings() model.Earnings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Snapshot(s.now())
}

func (s *Session) Snapshot() model.RiderState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := model.RiderState{
		Assignments:  s.pool.List(),
		Earnings:     s.ledger.Snapshot(s.now()),
		Availability: s.available,
	}

	if s.order != nil {
		order := *s.order
		state.CurrentOrder = &order
	}
	if s.location != nil {
		loc := *s.location
		state.Location = &loc
	}
	if s.feedConnected != nil {
		state.FeedConnected = s.feedConnected()
	}

	return state
}

// Close отписывает сессию от ленты. Если начисление по доставленному заказу
// ещё ждёт таймера, оно выполняется сразу, чтобы заработок не потерялся.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.closed = true
	s.unsubscribeProposalsLocked()
	flush := s.pending != nil && s.pending.Stop()
	s.mu.Unlock()

	if flush {
		s.completeDelivery()
	}
}

func (s *Session) notify(eventType string, order model.ActiveOrder) {
	if s.notifier == nil {
		return
	}

	s.notifier.Emit(model.Event{
		Type:  eventType,
		Order: &order,
		At:    s.now(),
	})
}
