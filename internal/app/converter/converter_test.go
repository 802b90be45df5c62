package converter

import (
	"testing"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	assert.Equal(t, "2024-05-01T12:30:00Z", formatTime(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-01T09:30:00Z", formatTime(time.Date(2024, 5, 1, 12, 30, 0, 0, moscow)))
	assert.Empty(t, formatTime(time.Time{}))
}

func TestConvertOrderToResponse(t *testing.T) {
	order := entity.Order{
		ID:       "o1",
		Kind:     entity.KindPostOrder,
		BuyerID:  "b1",
		SellerID: "s1",
		Terms: entity.Terms{
			Title:    "Landing page",
			Package:  entity.DefaultPackage,
			Price:    decimal.RequireFromString("99.90"),
			Currency: "usd",
		},
		Status:        entity.StatusInProgress,
		PaymentStatus: entity.PaymentPaid,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
	}

	response := ConvertCheckoutToResponse(order, entity.CheckoutSession{ID: "cs_1", URL: "https://pay"})

	assert.Equal(t, "cs_1", response.SessionID)
	assert.Equal(t, "https://pay", response.CheckoutURL)
	assert.Equal(t, "post_order", response.Order.Kind)
	assert.Equal(t, "in_progress", response.Order.Status)
	assert.Equal(t, "paid", response.Order.PaymentStatus)
	assert.Equal(t, "99.9", response.Order.Terms.Price.String())
	assert.Equal(t, "2024-05-02T12:00:00Z", response.Order.UpdatedAt)
}

func TestConvertListingRequestToListing(t *testing.T) {
	listing := ConvertListingRequestToListing(model.ListingRequest{
		Kind:  "service",
		Title: "Logo",
		Packages: []model.PackageRequest{
			{Name: "basic", Price: decimal.NewFromInt(10), DeliveryDays: 2},
			{Name: "pro", Price: decimal.NewFromInt(5), DeliveryDays: 4},
		},
	})

	assert.Equal(t, entity.ListingService, listing.Kind)
	assert.Len(t, listing.Packages, 2)

	response := ConvertListingToResponse(listing)
	assert.True(t, decimal.NewFromInt(5).Equal(response.StartingPrice))
}

func TestConvertUserToProfileResponse(t *testing.T) {
	response := ConvertUserToProfileResponse(entity.User{
		ID:       "u1",
		Login:    "ann",
		Password: "hash",
		Role:     entity.RoleFreelancer,
	})

	assert.Equal(t, "freelancer", response.Role)
	assert.Equal(t, []string{}, response.Skills)
}
