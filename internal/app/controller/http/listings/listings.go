package listings

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	httputils "github.com/avGenie/flexihire/internal/app/controller/http/utils"
	"github.com/avGenie/flexihire/internal/app/converter"
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
	err_usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/validator"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=listings.go -destination=mock/listings.go -package=mock

const (
	ListingIDParam = "id"

	ErrInvalidListingRequest = "listing needs a title and at least one package"
)

type ListingProcessor interface {
	Create(ctx context.Context, actor entity.Actor, listing entity.Listing) (entity.Listing, error)
	Get(ctx context.Context, listingID entity.ListingID) (entity.Listing, error)
	List(ctx context.Context, filter entity.ListingFilter) (entity.Listings, error)
	Update(ctx context.Context, actor entity.Actor, listingID entity.ListingID, changes entity.Listing) (entity.Listing, error)
	Delete(ctx context.Context, actor entity.Actor, listingID entity.ListingID) error
}

type Listing struct {
	service ListingProcessor
}

func New(service ListingProcessor) Listing {
	return Listing{
		service: service,
	}
}

func (l *Listing) CreateListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		listing, err := l.parseListing(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		created, err := l.service.Create(ctx, actor, listing)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertListingToResponse(created))
	}
}

func (l *Listing) GetListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		listing, err := l.service.Get(ctx, entity.ListingID(chi.URLParam(r, ListingIDParam)))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertListingToResponse(listing))
	}
}

func (l *Listing) ListListings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r.URL.Query())
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		listings, err := l.service.List(ctx, filter)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertListingsToResponse(listings))
	}
}

func (l *Listing) UpdateListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		listing, err := l.parseListing(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		updated, err := l.service.Update(ctx, actor, entity.ListingID(chi.URLParam(r, ListingIDParam)), listing)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertListingToResponse(updated))
	}
}

func (l *Listing) DeleteListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		err = l.service.Delete(ctx, actor, entity.ListingID(chi.URLParam(r, ListingIDParam)))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (l *Listing) parseListing(r *http.Request) (entity.Listing, error) {
	var request model.ListingRequest
	err := httputils.DecodeJSON(r, &request)
	if err != nil {
		return entity.Listing{}, err
	}

	if !validator.ListingRequest(request) {
		return entity.Listing{}, fmt.Errorf("%w: %s", err_usecase.ErrValidation, ErrInvalidListingRequest)
	}

	return converter.ConvertListingRequestToListing(request), nil
}

func parseFilter(query url.Values) (entity.ListingFilter, error) {
	filter := entity.ListingFilter{
		Kind:     entity.ListingKind(query.Get("kind")),
		Category: query.Get("category"),
		OwnerID:  entity.UserID(query.Get("owner")),
		Query:    query.Get("q"),
		Sort:     entity.ListingSort(query.Get("sort")),
	}

	var err error
	if filter.MinPrice, err = parsePrice(query, "minPrice"); err != nil {
		return entity.ListingFilter{}, err
	}
	if filter.MaxPrice, err = parsePrice(query, "maxPrice"); err != nil {
		return entity.ListingFilter{}, err
	}
	if filter.Limit, err = parseInt(query, "limit"); err != nil {
		return entity.ListingFilter{}, err
	}
	if filter.Offset, err = parseInt(query, "offset"); err != nil {
		return entity.ListingFilter{}, err
	}

	return filter, nil
}

func parsePrice(query url.Values, key string) (decimal.NullDecimal, error) {
	value := query.Get(key)
	if len(value) == 0 {
		return decimal.NullDecimal{}, nil
	}

	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %s is not a number", err_usecase.ErrValidation, key)
	}

	return decimal.NewNullDecimal(price), nil
}

func parseInt(query url.Values, key string) (int, error) {
	value := query.Get(key)
	if len(value) == 0 {
		return 0, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", err_usecase.ErrValidation, key)
	}

	return out, nil
}
