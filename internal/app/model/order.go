package model

import "github.com/shopspring/decimal"

type CheckoutRequest struct {
	ListingID    string `json:"listingId"`
	Package      string `json:"package"`
	Requirements string `json:"requirements"`
}

type ApplicationRequest struct {
	Bid          decimal.Decimal `json:"bid"`
	DeliveryDays int             `json:"deliveryDays"`
	CoverLetter  string          `json:"coverLetter"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type TermsResponse struct {
	Title        string          `json:"title"`
	Package      string          `json:"package"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	DeliveryDays int             `json:"deliveryDays"`
	Requirements string          `json:"requirements,omitempty"`
}

type Orders []OrderResponse

type OrderResponse struct {
	ID            string        `json:"id"`
	Kind          string        `json:"kind"`
	BuyerID       string        `json:"buyerId"`
	SellerID      string        `json:"sellerId"`
	ListingID     string        `json:"listingId"`
	Terms         TermsResponse `json:"terms"`
	Status        string        `json:"status"`
	PaymentStatus string        `json:"paymentStatus"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
}

type CheckoutResponse struct {
	Order       OrderResponse `json:"order"`
	SessionID   string        `json:"sessionId"`
	CheckoutURL string        `json:"checkoutUrl"`
}

type StatusHistory []StatusRecordResponse

type StatusRecordResponse struct {
	From          string `json:"from"`
	To            string `json:"to"`
	PaymentStatus string `json:"paymentStatus"`
	ActorID       string `json:"actorId,omitempty"`
	Reason        string `json:"reason"`
	At            string `json:"at"`
}
