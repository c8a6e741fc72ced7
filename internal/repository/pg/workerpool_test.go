package pg

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ibeloyar/courierdesk/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type storeStub struct {
	mu       sync.Mutex
	saved    []model.CompletedDelivery
	failures []error
	calls    int
}

func (s *storeStub) InsertCompletedDelivery(_ context.Context, rec model.CompletedDelivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if len(s.failures) > 0 {
		err := s.failures[0]
		s.failures = s.failures[1:]
		return err
	}

	s.saved = append(s.saved, rec)
	return nil
}

func (s *storeStub) savedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.saved)
}

func delivery(id string) model.CompletedDelivery {
	return model.CompletedDelivery{
		Assignment: model.Assignment{ID: id, Payout: 10},
		RiderID:    1,
		Earnings:   10,
	}
}

func TestNewLedgerWriter(t *testing.T) {
	w := NewLedgerWriter(&storeStub{}, 2, zap.NewNop().Sugar())

	assert.NotNil(t, w.ctx)
	assert.NotNil(t, w.cancel)
	assert.Equal(t, 2, w.numWorkers)
	assert.Equal(t, 2*queueSizePerWorker, cap(w.jobsQueue))
	assert.NotNil(t, w.pauseCond)
	assert.False(t, w.paused)
}

func TestNewLedgerWriter_DefaultWorkers(t *testing.T) {
	w := NewLedgerWriter(&storeStub{}, 0, zap.NewNop().Sugar())

	assert.Positive(t, w.numWorkers)
}

func TestLedgerWriter_RecordAndDrain(t *testing.T) {
	store := &storeStub{}
	w := NewLedgerWriter(store, 2, zap.NewNop().Sugar())
	w.Start()

	for _, id := range []string{"job_1", "job_2", "job_3"} {
		w.RecordCompletion(delivery(id))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, w.Shutdown(ctx))
	assert.Equal(t, 3, store.savedCount())
}

func TestLedgerWriter_NonRetriableErrorDropsRecord(t *testing.T) {
	store := &storeStub{failures: []error{&pgconn.PgError{Code: "23503"}}}
	w := NewLedgerWriter(store, 1, zap.NewNop().Sugar())
	w.Start()

	w.RecordCompletion(delivery("job_1"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, w.Shutdown(ctx))
	assert.Equal(t, 0, store.savedCount())
	assert.Equal(t, 1, store.calls)
}

func TestLedgerWriter_RetriableErrorPausesAndRetries(t *testing.T) {
	store := &storeStub{failures: []error{&pgconn.PgError{Code: "08006"}}}
	w := NewLedgerWriter(store, 1, zap.NewNop().Sugar())
	w.pauseDuration = 20 * time.Millisecond
	w.Start()

	w.RecordCompletion(delivery("job_1"))

	assert.Eventually(t, func() bool {
		return store.savedCount() == 1
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, w.Shutdown(ctx))
	assert.Equal(t, 2, store.calls)
}

func TestLedgerWriter_ShutdownTimeout(t *testing.T) {
	store := &storeStub{failures: []error{&pgconn.PgError{Code: "08006"}}}
	w := NewLedgerWriter(store, 1, zap.NewNop().Sugar())
	w.pauseDuration = time.Hour
	w.Start()

	w.RecordCompletion(delivery("job_1"))

	require.Eventually(t, func() bool {
		w.pauseMu.Lock()
		defer w.pauseMu.Unlock()
		return w.paused
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := w.Shutdown(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 0, store.savedCount())
}

type downStore struct {
	calls atomic.Int32
}

func (s *downStore) InsertCompletedDelivery(context.Context, model.CompletedDelivery) error {
	s.calls.Add(1)
	return &pgconn.PgError{Code: "08006"}
}

func TestLedgerWriter_ShutdownWithFullQueueRespectsDeadline(t *testing.T) {
	w := NewLedgerWriter(&downStore{}, 1, zap.NewNop().Sugar())
	w.pauseDuration = time.Hour
	w.Start()

	// один в воркере, очередь заполнена, ещё один ждёт места
	total := cap(w.jobsQueue) + 2
	var senders sync.WaitGroup
	senders.Add(total)
	for i := 0; i < total; i++ {
		go func() {
			defer senders.Done()
			w.RecordCompletion(delivery("job"))
		}()
	}

	require.Eventually(t, func() bool {
		return len(w.jobsQueue) == cap(w.jobsQueue)
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		result <- w.Shutdown(ctx)
	}()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown ignored its deadline")
	}

	sendersDone := make(chan struct{})
	go func() {
		senders.Wait()
		close(sendersDone)
	}()

	select {
	case <-sendersDone:
	case <-time.After(time.Second):
		t.Fatal("RecordCompletion still blocked after shutdown")
	}
}

func TestLedgerWriter_RecordAfterShutdown(t *testing.T) {
	store := &storeStub{}
	w := NewLedgerWriter(store, 1, zap.NewNop().Sugar())
	w.Start()

	require.NoError(t, w.Shutdown(context.Background()))

	assert.NotPanics(t, func() {
		w.RecordCompletion(delivery("job_1"))
	})
	assert.Equal(t, 0, store.savedCount())
}

func TestShutdownEmptyPool(t *testing.T) {
	w := NewLedgerWriter(&storeStub{}, 2, zap.NewNop().Sugar())
	w.Start()

	start := time.Now()
	require.NoError(t, w.Shutdown(context.Background()))
	duration := time.Since(start)

	assert.True(t, duration < 50*time.Millisecond)
}

func TestPausePoolWithTimer(t *testing.T) {
	w := NewLedgerWriter(&storeStub{}, 1, zap.NewNop().Sugar())

	// пауза
	w.pausePoolWithTimer(100 * time.Millisecond)

	w.pauseMu.Lock()
	assert.True(t, w.paused)
	w.pauseMu.Unlock()

	// возобновление
	assert.Eventually(t, func() bool {
		w.pauseMu.Lock()
		defer w.pauseMu.Unlock()
		return !w.paused
	}, time.Second, 10*time.Millisecond)
}

func TestPauseResumeRaceCondition(t *testing.T) {
	w := NewLedgerWriter(&storeStub{}, 1, zap.NewNop().Sugar())
	var wg sync.WaitGroup

	// многократные паузы
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pausePoolWithTimer(20 * time.Millisecond)
		}()
	}

	wg.Wait()

	assert.Eventually(t, func() bool {
		w.pauseMu.Lock()
		defer w.pauseMu.Unlock()
		return !w.paused
	}, time.Second, 10*time.Millisecond)
}
