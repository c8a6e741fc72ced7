package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyNormal Urgency = "normal"
	UrgencyLow    Urgency = "low"
)

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyHigh, UrgencyNormal, UrgencyLow:
		return true
	default:
		return false
	}
}

// Assignment - предложенный, но ещё не принятый заказ на доставку
type Assignment struct {
	ID              string    `json:"id"`
	StoreType       string    `json:"storeType"`
	StoreName       string    `json:"storeName"`
	CustomerName    string    `json:"customerName"`
	Items           int       `json:"items"`
	Distance        string    `json:"distance"`
	EstimatedTime   string    `json:"estimatedTime"`
	Payout          float64   `json:"payout"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Urgency         Urgency   `json:"urgency"`
	Timestamp       time.Time `json:"timestamp"`
}

// Validate проверяет задание из любого источника: HTTP или диспетчерской ленты
func (a Assignment) Validate() error {
	switch {
	case strings.TrimSpace(a.ID) == "":
		return fmt.Errorf("%w: empty id", ErrAssignmentInvalid)
	case a.Items <= 0:
		return fmt.Errorf("%w: items must be positive, got %d", ErrAssignmentInvalid, a.Items)
	case a.Payout < 0 || math.IsNaN(a.Payout) || math.IsInf(a.Payout, 0):
		return fmt.Errorf("%w: bad payout %v", ErrAssignmentInvalid, a.Payout)
	case a.Urgency != "" && !a.Urgency.IsValid():
		return fmt.Errorf("%w: unknown urgency %q", ErrAssignmentInvalid, a.Urgency)
	}

	return nil
}

type Location struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type VerifyOTPDTO struct {
	Code string `json:"code"`
}

type AvailabilityDTO struct {
	Availability bool `json:"availability"`
}

// RiderState - снимок состояния сессии курьера
type RiderState struct {
	Assignments   []Assignment `json:"assignments"`
	CurrentOrder  *ActiveOrder `json:"currentOrder"`
	Earnings      Earnings     `json:"earnings"`
	Availability  bool         `json:"availability"`
	Location      *Location    `json:"location,omitempty"`
	FeedConnected bool         `json:"feedConnected"`
}
