package model

import "github.com/shopspring/decimal"

type PackageRequest struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDays int             `json:"deliveryDays"`
	Description  string          `json:"description"`
}

type ListingRequest struct {
	Kind        string           `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Packages    []PackageRequest `json:"packages"`
}

type PackageResponse struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDays int             `json:"deliveryDays"`
	Description  string          `json:"description,omitempty"`
}

type Listings []ListingResponse

type ListingResponse struct {
	ID            string            `json:"id"`
	Kind          string            `json:"kind"`
	OwnerID       string            `json:"ownerId"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	Packages      []PackageResponse `json:"packages"`
	StartingPrice decimal.Decimal   `json:"startingPrice"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}
