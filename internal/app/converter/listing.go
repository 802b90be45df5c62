package converter

import (
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
)

func ConvertListingRequestToListing(request model.ListingRequest) entity.Listing {
	packages := make([]entity.Package, 0, len(request.Packages))
	for _, pkg := range request.Packages {
		packages = append(packages, entity.Package{
			Name:         pkg.Name,
			Price:        pkg.Price,
			DeliveryDays: pkg.DeliveryDays,
			Description:  pkg.Description,
		})
	}

	return entity.Listing{
		Kind:        entity.ListingKind(request.Kind),
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		Packages:    packages,
	}
}

func ConvertListingsToResponse(listings entity.Listings) model.Listings {
	out := make(model.Listings, 0, len(listings))
	for _, listing := range listings {
		out = append(out, ConvertListingToResponse(listing))
	}

	return out
}

func ConvertListingToResponse(listing entity.Listing) model.ListingResponse {
	packages := make([]model.PackageResponse, 0, len(listing.Packages))
	for _, pkg := range listing.Packages {
		packages = append(packages, model.PackageResponse{
			Name:         pkg.Name,
			Price:        pkg.Price,
			DeliveryDays: pkg.DeliveryDays,
			Description:  pkg.Description,
		})
	}

	return model.ListingResponse{
		ID:            listing.ID.String(),
		Kind:          string(listing.Kind),
		OwnerID:       listing.OwnerID.String(),
		Title:         listing.Title,
		Description:   listing.Description,
		Category:      listing.Category,
		Packages:      packages,
		StartingPrice: listing.StartingPrice(),
		CreatedAt:     formatTime(listing.CreatedAt),
		UpdatedAt:     formatTime(listing.UpdatedAt),
	}
}
