package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderID string

func (o OrderID) String() string {
	return string(o)
}

func (o OrderID) Valid() bool {
	return len(o) != 0
}

// OrderKind tags which listing type an engagement was made against.
type OrderKind string

const (
	KindOrder          OrderKind = `order`
	KindPostOrder      OrderKind = `post_order`
	KindJobApplication OrderKind = `job_application`
)

type OrderStatus string

const (
	StatusPending          OrderStatus = `pending`
	StatusShortlisted      OrderStatus = `shortlisted`
	StatusPaymentConfirmed OrderStatus = `payment_confirmed`
	StatusInProgress       OrderStatus = `in_progress`
	StatusReview           OrderStatus = `review`
	StatusRevision         OrderStatus = `revision`
	StatusDelivered        OrderStatus = `delivered`
	StatusCompleted        OrderStatus = `completed`
	StatusRejected         OrderStatus = `rejected`
	StatusCancelled        OrderStatus = `cancelled`
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = `pending`
	PaymentPaid     PaymentStatus = `paid`
	PaymentFailed   PaymentStatus = `failed`
	PaymentRefunded PaymentStatus = `refunded`
)

// Party is the side of an engagement that drives a transition.
type Party string

const (
	PartyBuyer   Party = `buyer`
	PartySeller  Party = `seller`
	PartyGateway Party = `gateway`
)

// Terms is the commercial snapshot taken at creation. It is never re-derived
// from the listing.
type Terms struct {
	Title        string
	Package      string
	Price        decimal.Decimal
	Currency     string
	DeliveryDays int
	Requirements string
}

type Orders []Order

type Order struct {
	ID                OrderID
	Kind              OrderKind
	BuyerID           UserID
	SellerID          UserID
	ListingID         ListingID
	Terms             Terms
	Status            OrderStatus
	PaymentStatus     PaymentStatus
	CheckoutSessionID string
	PaymentIntentID   string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PartyOf returns the side the user stands on, if any.
func (o Order) PartyOf(userID UserID) (Party, bool) {
	switch userID {
	case o.BuyerID:
		return PartyBuyer, true
	case o.SellerID:
		return PartySeller, true
	default:
		return "", false
	}
}

// OrderUpdate is a compare-and-swap on an order row. Empty guards match any
// value, empty targets keep the stored value.
type OrderUpdate struct {
	ID OrderID

	FromStatuses []OrderStatus
	FromPayments []PaymentStatus

	Status            OrderStatus
	PaymentStatus     PaymentStatus
	CheckoutSessionID string
	PaymentIntentID   string

	ActorID UserID
	Reason  string
	At      time.Time
}

func (u OrderUpdate) Matches(order Order) bool {
	return matchStatus(u.FromStatuses, order.Status) && matchPayment(u.FromPayments, order.PaymentStatus)
}

// Apply returns the order as it looks after the update.
func (u OrderUpdate) Apply(order Order) Order {
	if len(u.Status) != 0 {
		order.Status = u.Status
	}
	if len(u.PaymentStatus) != 0 {
		order.PaymentStatus = u.PaymentStatus
	}
	if len(u.CheckoutSessionID) != 0 {
		order.CheckoutSessionID = u.CheckoutSessionID
	}
	if len(u.PaymentIntentID) != 0 {
		order.PaymentIntentID = u.PaymentIntentID
	}
	order.UpdatedAt = u.At

	return order
}

func matchStatus(statuses []OrderStatus, status OrderStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if s == status {
			return true
		}
	}

	return false
}

func matchPayment(payments []PaymentStatus, payment PaymentStatus) bool {
	if len(payments) == 0 {
		return true
	}
	for _, p := range payments {
		if p == payment {
			return true
		}
	}

	return false
}

type OrderFilter struct {
	UserID UserID
	Side   Party
	Kind   OrderKind
	Status OrderStatus
}

type StatusHistory []StatusRecord

type StatusRecord struct {
	OrderID       OrderID
	From          OrderStatus
	To            OrderStatus
	PaymentStatus PaymentStatus
	ActorID       UserID
	Reason        string
	At            time.Time
}

func CreateStatusRecord(before, after Order, actorID UserID, reason string) StatusRecord {
	return StatusRecord{
		OrderID:       after.ID,
		From:          before.Status,
		To:            after.Status,
		PaymentStatus: after.PaymentStatus,
		ActorID:       actorID,
		Reason:        reason,
		At:            after.UpdatedAt,
	}
}

type PurchaseRequest struct {
	ListingID    ListingID
	Package      string
	Requirements string
}

type ApplicationRequest struct {
	Bid          decimal.Decimal
	DeliveryDays int
	CoverLetter  string
}
