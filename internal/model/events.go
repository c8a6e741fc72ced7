package model

import "time"

const (
	EventConnect    = "connect"
	EventDisconnect = "disconnect"

	EventJobProposed     = "job.proposed"
	EventJobAssigned     = "job.assigned"
	EventOrderPickedUp   = "order.picked_up"
	EventOrderOTPIssued  = "order.otp.issued"
	EventCustomerArrived = "customer.arrived"
	EventOrderDelivered  = "order.delivered"
	EventOrderCompleted  = "order.completed"
)

// OrderUpdate - информационное уведомление о заказе, не меняет состояние
type OrderUpdate struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"orderId,omitempty"`
	AssignmentID string    `json:"assignmentId,omitempty"`
	OTP          string    `json:"otp,omitempty"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

type Event struct {
	ID         string       `json:"id,omitempty"`
	Type       string       `json:"type"`
	Assignment *Assignment  `json:"assignment,omitempty"`
	Update     *OrderUpdate `json:"update,omitempty"`
	Order      *ActiveOrder `json:"order,omitempty"`
	At         time.Time    `json:"at"`
}
