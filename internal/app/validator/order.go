package validator

import "github.com/avGenie/flexihire/internal/app/model"

func CheckoutRequest(request model.CheckoutRequest) bool {
	return len(request.ListingID) > 0
}

func ApplicationRequest(request model.ApplicationRequest) bool {
	return request.Bid.IsPositive() && request.DeliveryDays > 0
}

func StatusRequest(request model.StatusRequest) bool {
	return len(request.Status) > 0
}
