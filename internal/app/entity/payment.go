package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type SessionOutcome string

const (
	OutcomeOpen    SessionOutcome = `open`
	OutcomePaid    SessionOutcome = `paid`
	OutcomeExpired SessionOutcome = `expired`
)

type SessionRequest struct {
	OrderID  OrderID
	Title    string
	Amount   decimal.Decimal
	Currency string
}

type CheckoutSession struct {
	ID              string
	URL             string
	OrderID         OrderID
	Outcome         SessionOutcome
	PaymentIntentID string
}

type StatusEvent struct {
	EventID       string        `json:"event_id"`
	OrderID       OrderID       `json:"order_id"`
	Kind          OrderKind     `json:"kind"`
	From          OrderStatus   `json:"from"`
	To            OrderStatus   `json:"to"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	ActorID       UserID        `json:"actor_id,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	At            time.Time     `json:"at"`
}
