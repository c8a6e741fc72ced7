package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ibeloyar/courierdesk/internal/model"
)

func (r *Repository) InsertCompletedDelivery(ctx context.Context, rec model.CompletedDelivery) error {
	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO completed_deliveries
			(rider_id, assignment_id, store_type, store_name, customer_name, items, payout,
			pickup_address, delivery_address, urgency, accepted_at, completed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			rec.RiderID,
			rec.ID,
			rec.StoreType,
			rec.StoreName,
			rec.CustomerName,
			rec.Items,
			rec.Earnings,
			rec.PickupAddress,
			rec.DeliveryAddress,
			rec.Urgency,
			rec.AcceptedAt,
			rec.CompletedAt,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("insert completed delivery: %w", err)
	}

	return nil
}

// GetCompletedDeliveries - история доставок курьера, новые первыми
func (r *Repository) GetCompletedDeliveries(ctx context.Context, riderID int64) ([]model.CompletedDelivery, error) {
	result := make([]model.CompletedDelivery, 0)

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx,
			`SELECT assignment_id, store_type, store_name, customer_name, items, payout,
			pickup_address, delivery_address, urgency, accepted_at, completed_at
			FROM completed_deliveries WHERE rider_id = $1 ORDER BY completed_at DESC`,
			riderID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			rec := model.CompletedDelivery{RiderID: riderID}
			if err := rows.Scan(
				&rec.ID,
				&rec.StoreType,
				&rec.StoreName,
				&rec.CustomerName,
				&rec.Items,
				&rec.Earnings,
				&rec.PickupAddress,
				&rec.DeliveryAddress,
				&rec.Urgency,
				&rec.AcceptedAt,
				&rec.CompletedAt,
			); err != nil {
				return err
			}

			rec.Payout = rec.Earnings
			rec.Timestamp = rec.AcceptedAt
			result = append(result, rec)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("get completed deliveries: %w", err)
	}

	return result, nil
}

// GetEarningsTotals - суммы выплат с начала дня, ISO-недели и месяца
// (границы считаются в часовом поясе now)
func (r *Repository) GetEarningsTotals(ctx context.Context, riderID int64, now time.Time) (model.EarningsTotals, error) {
	var totals model.EarningsTotals
	day, week, month := model.PeriodStarts(now)

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`SELECT
			COALESCE(SUM(payout) FILTER (WHERE completed_at >= $2), 0) AS today,
			COALESCE(SUM(payout) FILTER (WHERE completed_at >= $3), 0) AS week,
			COALESCE(SUM(payout) FILTER (WHERE completed_at >= $4), 0) AS month
			FROM completed_deliveries WHERE rider_id = $1`,
			riderID,
			day,
			week,
			month,
		).Scan(&totals.Today, &totals.Week, &totals.Month)
	})
	if err != nil {
		return model.EarningsTotals{}, fmt.Errorf("get earnings totals: %w", err)
	}

	return totals, nil
}
