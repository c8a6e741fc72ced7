package model

import "time"

type OrderStatus string

const (
	OrderStatusAccepted        OrderStatus = "accepted"
	OrderStatusEnRoute         OrderStatus = "en_route"
	OrderStatusArrivedCustomer OrderStatus = "arrived_customer"
	OrderStatusDelivered       OrderStatus = "delivered"
)

type ActiveOrder struct {
	Assignment
	Status     OrderStatus `json:"status"`
	AcceptedAt time.Time   `json:"acceptedAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type CompletedDelivery struct {
	Assignment
	RiderID     int64     `json:"-"`
	AcceptedAt  time.Time `json:"acceptedAt"`
	CompletedAt time.Time `json:"completedAt"`
	Earnings    float64   `json:"earnings"`
}

type Earnings struct {
	Today               float64             `json:"today"`
	Week                float64             `json:"week"`
	Month               float64             `json:"month"`
	CompletedDeliveries []CompletedDelivery `json:"completedDeliveries"`
}

type EarningsTotals struct {
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
	Month float64 `json:"month"`
}

// PeriodStarts - начало дня, ISO-недели и месяца в часовом поясе now
func PeriodStarts(now time.Time) (day, week, month time.Time) {
	day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// неделя начинается с понедельника
	offset := (int(day.Weekday()) + 6) % 7
	week = day.AddDate(0, 0, -offset)

	month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return day, week, month
}
