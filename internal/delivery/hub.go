package delivery

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ibeloyar/courierdesk/internal/feed"
	"github.com/ibeloyar/courierdesk/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SourceFactory создаёт источник событий ленты для курьера
type SourceFactory func(riderID int64, bus *feed.Bus) feed.Source

type EarningsLoader interface {
	GetEarningsTotals(ctx context.Context, riderID int64, now time.Time) (model.EarningsTotals, error)
}

type riderSession struct {
	session *Session
	bus     *feed.Bus
	source  feed.Source
	logSub  feed.Subscription
}

// Hub хранит сессии курьеров: у каждого своя шина, свой источник ленты и
// своя сессия. Сессия создаётся при первом обращении.
type Hub struct {
	mu       sync.Mutex
	sessions map[int64]*riderSession
	closed   bool
	creating singleflight.Group

	newSource SourceFactory
	loader    EarningsLoader
	opts      []Option
	lg        *zap.SugaredLogger
}

// NewHub - newSource и loader могут быть nil: тогда сессия работает без
// ленты и начинает с нулевого заработка.
func NewHub(lg *zap.SugaredLogger, newSource SourceFactory, loader EarningsLoader, opts ...Option) *Hub {
	return &Hub{
		sessions:  make(map[int64]*riderSession),
		newSource: newSource,
		loader:    loader,
		opts:      opts,
		lg:        lg,
	}
}

func (h *Hub) Session(ctx context.Context, riderID int64) (*Session, error) {
	if session, ok, err := h.lookup(riderID); ok || err != nil {
		return session, err
	}

	// сессия создаётся без h.mu: загрузка заработка и старт ленты идут по сети
	v, err, _ := h.creating.Do(strconv.FormatInt(riderID, 10), func() (any, error) {
		if session, ok, err := h.lookup(riderID); ok || err != nil {
			return session, err
		}

		rs, err := h.newRiderSession(ctx, riderID)
		if err != nil {
			return nil, err
		}

		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			h.closeRiderSession(riderID, rs)
			return nil, model.ErrSessionClosed
		}
		h.sessions[riderID] = rs
		h.mu.Unlock()

		h.lg.Infof("rider %d session created", riderID)
		return rs.session, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Session), nil
}

func (h *Hub) lookup(riderID int64) (*Session, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, false, model.ErrSessionClosed
	}

	rs, ok := h.sessions[riderID]
	if !ok {
		return nil, false, nil
	}

	return rs.session, true, nil
}

func (h *Hub) newRiderSession(ctx context.Context, riderID int64) (*riderSession, error) {
	opts := append([]Option{WithLogger(h.lg)}, h.opts...)

	if h.loader != nil {
		totals, err := h.loader.GetEarningsTotals(ctx, riderID, time.Now())
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithEarnings(totals))
	}

	bus := feed.NewBus()
	rs := &riderSession{bus: bus}

	rs.logSub = bus.Subscribe(feed.AnyEvent, func(ev model.Event) {
		h.lg.Infow("feed event", "rider", riderID, "type", ev.Type, "id", ev.ID)
	})

	if h.newSource != nil {
		rs.source = h.newSource(riderID, bus)
		opts = append(opts, WithFeedStatus(rs.source.Connected))
	}

	opts = append(opts, WithNotifier(bus))
	rs.session = NewSession(riderID, opts...)
	rs.session.AttachFeed(bus)

	if rs.source != nil {
		// источник живёт дольше запроса, который создал сессию
		if err := rs.source.Start(context.WithoutCancel(ctx)); err != nil {
			h.lg.Errorf("rider %d feed start failed: %v", riderID, err)
		}
	}

	return rs, nil
}

func (h *Hub) closeRiderSession(riderID int64, rs *riderSession) {
	if rs.source != nil {
		if err := rs.source.Close(); err != nil {
			h.lg.Errorf("rider %d feed close: %v", riderID, err)
		}
	}
	rs.session.Close()
	rs.logSub.Unsubscribe()
}

func (h *Hub) Shutdown() {
	h.mu.Lock()
	h.closed = true
	sessions := h.sessions
	h.sessions = make(map[int64]*riderSession)
	h.mu.Unlock()

	for riderID, rs := range sessions {
		h.closeRiderSession(riderID, rs)
	}
}
