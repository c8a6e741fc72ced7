package pg

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/ibeloyar/courierdesk/internal/model"
	"go.uber.org/zap"
)

const (
	defaultPauseDuration = 10 * time.Second
	queueSizePerWorker   = 16
)

type completionStore interface {
	InsertCompletedDelivery(ctx context.Context, rec model.CompletedDelivery) error
}

// LedgerWriter - пул воркеров, который сохраняет завершённые доставки в БД,
// не блокируя сессию курьера
type LedgerWriter struct {
	store      completionStore
	classifier *PostgresErrorClassifier
	lg         *zap.SugaredLogger

	jobsQueue  chan model.CompletedDelivery
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	inflight   sync.WaitGroup
	numWorkers int

	closeMu sync.RWMutex
	closed  bool

	pauseMu       sync.Mutex
	pauseCond     *sync.Cond
	paused        bool
	pauseDuration time.Duration
}

func NewLedgerWriter(store completionStore, numWorkers int, lg *zap.SugaredLogger) *LedgerWriter {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	w := &LedgerWriter{
		store:         store,
		classifier:    NewPostgresErrorClassifier(),
		lg:            lg,
		jobsQueue:     make(chan model.CompletedDelivery, numWorkers*queueSizePerWorker),
		ctx:           ctx,
		cancel:        cancel,
		numWorkers:    numWorkers,
		pauseDuration: defaultPauseDuration,
	}

	w.pauseCond = sync.NewCond(&w.pauseMu)

	return w
}

func (w *LedgerWriter) Start() {
	w.wg.Add(w.numWorkers)
	for i := 0; i < w.numWorkers; i++ {
		go w.worker()
	}
}

// RecordCompletion ставит запись в очередь на сохранение
func (w *LedgerWriter) RecordCompletion(rec model.CompletedDelivery) {
	w.closeMu.RLock()
	if w.closed {
		w.closeMu.RUnlock()
		w.lg.Errorf("ledger writer closed, delivery %s of rider %d not persisted", rec.ID, rec.RiderID)
		return
	}
	w.inflight.Add(1)
	w.closeMu.RUnlock()

	// очередь может быть полна, пока БД недоступна; выход - принудительная остановка
	select {
	case w.jobsQueue <- rec:
	case <-w.ctx.Done():
		w.lg.Errorf("ledger writer stopped, delivery %s of rider %d not persisted", rec.ID, rec.RiderID)
		w.inflight.Done()
	}
}

func (w *LedgerWriter) worker() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			w.drop()
			return
		case rec := <-w.jobsQueue:
			w.write(rec)
			w.inflight.Done()
		}
	}
}

func (w *LedgerWriter) write(rec model.CompletedDelivery) {
	for {
		w.waitIfPaused()

		if w.ctx.Err() != nil {
			w.lg.Errorf("ledger writer stopped, delivery %s of rider %d not persisted", rec.ID, rec.RiderID)
			return
		}

		err := w.store.InsertCompletedDelivery(w.ctx, rec)
		if err == nil {
			return
		}

		if w.classifier.Classify(err) != Retriable {
			w.lg.Errorf("persisting delivery %s of rider %d: %v", rec.ID, rec.RiderID, err)
			return
		}

		w.lg.Warnf("database unavailable, pausing ledger writer for %s: %v", w.pauseDuration, err)
		w.pausePoolWithTimer(w.pauseDuration)
	}
}

// drop - после отмены оставшиеся в очереди записи уже не сохранить
func (w *LedgerWriter) drop() {
	for {
		select {
		case rec := <-w.jobsQueue:
			w.lg.Errorf("ledger writer stopped, delivery %s of rider %d not persisted", rec.ID, rec.RiderID)
			w.inflight.Done()
		default:
			return
		}
	}
}

func (w *LedgerWriter) waitIfPaused() {
	w.pauseMu.Lock()
	defer w.pauseMu.Unlock()

	for w.paused && w.ctx.Err() == nil {
		w.pauseCond.Wait() // до resume
	}
}

func (w *LedgerWriter) pausePoolWithTimer(duration time.Duration) {
	w.pauseMu.Lock()
	defer w.pauseMu.Unlock()

	if w.paused {
		return
	}

	w.paused = true

	time.AfterFunc(duration, w.resumePool)
}

func (w *LedgerWriter) resumePool() {
	w.pauseMu.Lock()
	defer w.pauseMu.Unlock()

	w.paused = false

	// разблокируем все воркеры
	w.pauseCond.Broadcast()
}

// Shutdown дожидается сохранения всей очереди; по истечении ctx
// останавливает воркеры, не дописав остаток
func (w *LedgerWriter) Shutdown(ctx context.Context) error {
	w.closeMu.Lock()
	w.closed = true
	w.closeMu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.inflight.Wait()
	}()

	select {
	case <-done:
		w.cancel()
		w.wg.Wait()
		w.lg.Info("ledger writer drained")
		return nil
	case <-ctx.Done():
		w.lg.Warn("force ledger writer shutdown after timeout")
		w.cancel()
		w.resumePool()
		w.wg.Wait()
		w.drop()
		return ctx.Err()
	}
}
