package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/errors"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxServicePackages = 3

	defaultLimit = 20
	maxLimit     = 100
)

// creators lists the roles allowed to publish each kind of listing besides admin.
var creators = map[entity.ListingKind][]entity.Role{
	entity.ListingService: {entity.RoleFreelancer, entity.RoleUniversity},
	entity.ListingPost:    {entity.RoleFreelancer, entity.RoleUniversity},
	entity.ListingJob:     {entity.RoleClient, entity.RoleUniversity},
}

type ListingStorage interface {
	CreateListing(ctx context.Context, listing entity.Listing) error
	GetListing(ctx context.Context, listingID entity.ListingID) (entity.Listing, error)
	UpdateListing(ctx context.Context, listing entity.Listing) error
	DeleteListing(ctx context.Context, listingID entity.ListingID) error
	ListListings(ctx context.Context, filter entity.ListingFilter) (entity.Listings, error)
}

type Service struct {
	storage ListingStorage
}

func NewService(storage ListingStorage) *Service {
	return &Service{
		storage: storage,
	}
}

func (s *Service) Create(ctx context.Context, actor entity.Actor, listing entity.Listing) (entity.Listing, error) {
	if !listing.Kind.Valid() {
		return entity.Listing{}, fmt.Errorf("%w: unknown listing kind %q", usecase.ErrValidation, listing.Kind)
	}

	if !actor.IsAdmin() && !actor.HasRole(creators[listing.Kind]...) {
		return entity.Listing{}, fmt.Errorf("%w: role %q cannot publish %s listings", usecase.ErrForbidden, actor.Role, listing.Kind)
	}

	listing, err := normalize(listing)
	if err != nil {
		return entity.Listing{}, err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	listing.ID = entity.ListingID(uuid.NewString())
	listing.OwnerID = actor.ID
	listing.CreatedAt = now
	listing.UpdatedAt = now

	err = s.storage.CreateListing(ctx, listing)
	if err != nil {
		return entity.Listing{}, convertStorageError(err, "create listing")
	}

	zap.L().Info("listing created",
		zap.String("listing_id", listing.ID.String()),
		zap.String("kind", string(listing.Kind)),
		zap.String("user_id", actor.ID.String()),
	)

	return listing, nil
}

func (s *Service) Get(ctx context.Context, listingID entity.ListingID) (entity.Listing, error) {
	listing, err := s.storage.GetListing(ctx, listingID)
	if err != nil {
		return entity.Listing{}, convertStorageError(err, "get listing")
	}

	return listing, nil
}

func (s *Service) List(ctx context.Context, filter entity.ListingFilter) (entity.Listings, error) {
	if len(filter.Kind) != 0 && !filter.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown listing kind %q", usecase.ErrValidation, filter.Kind)
	}

	if len(filter.Sort) == 0 {
		filter.Sort = entity.SortNewest
	}
	if !filter.Sort.Valid() {
		return nil, fmt.Errorf("%w: unknown sort order %q", usecase.ErrValidation, filter.Sort)
	}

	if filter.MinPrice.Valid && filter.MaxPrice.Valid && filter.MinPrice.Decimal.GreaterThan(filter.MaxPrice.Decimal) {
		return nil, fmt.Errorf("%w: min price is greater than max price", usecase.ErrValidation)
	}

	if filter.Offset < 0 {
		return nil, fmt.Errorf("%w: negative offset", usecase.ErrValidation)
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultLimit
	case filter.Limit > maxLimit:
		filter.Limit = maxLimit
	}

	listings, err := s.storage.ListListings(ctx, filter)
	if err != nil {
		return nil, convertStorageError(err, "list listings")
	}

	return listings, nil
}

// Update replaces the editable fields. Kind and owner never change; orders
// already placed keep their own copy of the terms.
func (s *Service) Update(ctx context.Context, actor entity.Actor, listingID entity.ListingID, changes entity.Listing) (entity.Listing, error) {
	listing, err := s.owned(ctx, actor, listingID)
	if err != nil {
		return entity.Listing{}, err
	}

	changes.Kind = listing.Kind
	changes, err = normalize(changes)
	if err != nil {
		return entity.Listing{}, err
	}

	listing.Title = changes.Title
	listing.Description = changes.Description
	listing.Category = changes.Category
	listing.Packages = changes.Packages
	listing.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	err = s.storage.UpdateListing(ctx, listing)
	if err != nil {
		return entity.Listing{}, convertStorageError(err, "update listing")
	}

	return listing, nil
}

func (s *Service) Delete(ctx context.Context, actor entity.Actor, listingID entity.ListingID) error {
	_, err := s.owned(ctx, actor, listingID)
	if err != nil {
		return err
	}

	err = s.storage.DeleteListing(ctx, listingID)
	if err != nil {
		return convertStorageError(err, "delete listing")
	}

	zap.L().Info("listing deleted", zap.String("listing_id", listingID.String()), zap.String("user_id", actor.ID.String()))

	return nil
}

func (s *Service) owned(ctx context.Context, actor entity.Actor, listingID entity.ListingID) (entity.Listing, error) {
	listing, err := s.Get(ctx, listingID)
	if err != nil {
		return entity.Listing{}, err
	}

	if listing.OwnerID != actor.ID && !actor.IsAdmin() {
		return entity.Listing{}, fmt.Errorf("%w: listing %s belongs to another user", usecase.ErrForbidden, listingID)
	}

	return listing, nil
}

func normalize(listing entity.Listing) (entity.Listing, error) {
	listing.Title = strings.TrimSpace(listing.Title)
	listing.Description = strings.TrimSpace(listing.Description)
	listing.Category = strings.TrimSpace(listing.Category)

	if len(listing.Title) == 0 {
		return entity.Listing{}, fmt.Errorf("%w: empty title", usecase.ErrValidation)
	}

	packages, err := normalizePackages(listing.Kind, listing.Packages)
	if err != nil {
		return entity.Listing{}, err
	}
	listing.Packages = packages

	return listing, nil
}

// normalizePackages enforces the package rules: services offer one to three
// distinctly named tiers, posts and jobs carry exactly one default package.
func normalizePackages(kind entity.ListingKind, packages []entity.Package) ([]entity.Package, error) {
	out := make([]entity.Package, 0, len(packages))
	names := make(map[string]struct{}, len(packages))

	for _, pkg := range packages {
		pkg.Name = strings.TrimSpace(pkg.Name)
		if kind != entity.ListingService && len(pkg.Name) == 0 {
			pkg.Name = entity.DefaultPackage
		}

		if len(pkg.Name) == 0 {
			return nil, fmt.Errorf("%w: package without name", usecase.ErrValidation)
		}
		if _, ok := names[pkg.Name]; ok {
			return nil, fmt.Errorf("%w: duplicated package %q", usecase.ErrValidation, pkg.Name)
		}
		names[pkg.Name] = struct{}{}

		if !pkg.Price.IsPositive() {
			return nil, fmt.Errorf("%w: package %q price must be positive", usecase.ErrValidation, pkg.Name)
		}
		if pkg.DeliveryDays <= 0 {
			return nil, fmt.Errorf("%w: package %q delivery days must be positive", usecase.ErrValidation, pkg.Name)
		}

		out = append(out, pkg)
	}

	if kind == entity.ListingService {
		if len(out) == 0 || len(out) > maxServicePackages {
			return nil, fmt.Errorf("%w: service listing needs from 1 to %d packages", usecase.ErrValidation, maxServicePackages)
		}

		return out, nil
	}

	if len(out) != 1 || out[0].Name != entity.DefaultPackage {
		return nil, fmt.Errorf("%w: %s listing needs exactly one %q package", usecase.ErrValidation, kind, entity.DefaultPackage)
	}

	return out, nil
}

func convertStorageError(err error, operation string) error {
	if errors.Is(err, storage.ErrListingNotFound) {
		return fmt.Errorf("%w: %s: %w", usecase.ErrNotFound, operation, err)
	}

	return fmt.Errorf("%w: %s: %w", usecase.ErrStorage, operation, err)
}
