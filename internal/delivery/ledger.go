package delivery

import (
	"time"

	"github.com/ibeloyar/courierdesk/internal/model"
)

// Ledger - заработок курьера за сессию: суммы за день/неделю/месяц и
// история завершённых доставок (только добавление).
// Суммы обнуляются, когда начинается новый день, неделя или месяц.
type Ledger struct {
	totals  model.EarningsTotals
	asOf    time.Time
	history []model.CompletedDelivery
}

// NewLedger - seed считан из хранилища на момент asOf
func NewLedger(seed model.EarningsTotals, asOf time.Time) *Ledger {
	return &Ledger{totals: seed, asOf: asOf}
}

func (l *Ledger) Record(riderID int64, order model.ActiveOrder, at time.Time) model.CompletedDelivery {
	l.roll(at)

	rec := model.CompletedDelivery{
		Assignment:  order.Assignment,
		RiderID:     riderID,
		AcceptedAt:  order.AcceptedAt,
		CompletedAt: at,
		Earnings:    order.Payout,
	}

	l.totals.Today += rec.Earnings
	l.totals.Week += rec.Earnings
	l.totals.Month += rec.Earnings
	l.history = append(l.history, rec)

	return rec
}

func (l *Ledger) Snapshot(now time.Time) model.Earnings {
	l.roll(now)

	return model.Earnings{
		Today:               l.totals.Today,
		Week:                l.totals.Week,
		Month:               l.totals.Month,
		CompletedDeliveries: append(make([]model.CompletedDelivery, 0, len(l.history)), l.history...),
	}
}

func (l *Ledger) roll(now time.Time) {
	if !now.After(l.asOf) {
		return
	}

	day, week, month := model.PeriodStarts(now)
	if l.asOf.Before(day) {
		l.totals.Today = 0
	}
	if l.asOf.Before(week) {
		l.totals.Week = 0
	}
	if l.asOf.Before(month) {
		l.totals.Month = 0
	}

	l.asOf = now
}
