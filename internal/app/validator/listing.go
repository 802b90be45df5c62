package validator

import "github.com/avGenie/flexihire/internal/app/model"

// ListingRequest only checks the shape; package rules live in the listing service.
func ListingRequest(request model.ListingRequest) bool {
	return len(request.Title) > 0 && len(request.Packages) > 0
}
