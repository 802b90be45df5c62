package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avGenie/flexihire/internal/app/entity"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/errors"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const selectListing = `SELECT id, kind, owner_id, title, description, category, packages, created_at, updated_at FROM listings`

type packageRow struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDays int             `json:"delivery_days"`
	Description  string          `json:"description"`
}

func (s *Postgres) CreateListing(ctx context.Context, listing entity.Listing) error {
	packages, err := marshalPackages(listing.Packages)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO listings (id, kind, owner_id, title, description, category, packages, start_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10)
	`,
		listing.ID.String(),
		string(listing.Kind),
		listing.OwnerID.String(),
		listing.Title,
		listing.Description,
		listing.Category,
		packages,
		listing.StartingPrice().String(),
		listing.CreatedAt,
		listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}

	return nil
}

func (s *Postgres) GetListing(ctx context.Context, listingID entity.ListingID) (entity.Listing, error) {
	listing, err := scanListing(s.pool.QueryRow(ctx, selectListing+` WHERE id = $1`, listingID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Listing{}, storage.ErrListingNotFound
		}

		return entity.Listing{}, fmt.Errorf("failed to select listing: %w", err)
	}

	return listing, nil
}

func (s *Postgres) UpdateListing(ctx context.Context, listing entity.Listing) error {
	packages, err := marshalPackages(listing.Packages)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE listings
		SET title = $2, description = $3, category = $4, packages = $5, start_price = $6::numeric, updated_at = $7
		WHERE id = $1
	`,
		listing.ID.String(),
		listing.Title,
		listing.Description,
		listing.Category,
		packages,
		listing.StartingPrice().String(),
		listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return storage.ErrListingNotFound
	}

	return nil
}

func (s *Postgres) DeleteListing(ctx context.Context, listingID entity.ListingID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, listingID.String())
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return storage.ErrListingNotFound
	}

	return nil
}

func (s *Postgres) ListListings(ctx context.Context, filter entity.ListingFilter) (entity.Listings, error) {
	query, args := buildListingsQuery(filter)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select listings: %w", err)
	}
	defer rows.Close()

	var listings entity.Listings
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}

		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}

	return listings, nil
}

func buildListingsQuery(filter entity.ListingFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	add := func(condition string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if len(filter.Kind) != 0 {
		add("kind = $%d", string(filter.Kind))
	}
	if len(filter.Category) != 0 {
		add("category = $%d", filter.Category)
	}
	if filter.OwnerID.Valid() {
		add("owner_id = $%d", filter.OwnerID.String())
	}
	if filter.MinPrice.Valid {
		add("start_price >= $%d::numeric", filter.MinPrice.Decimal.String())
	}
	if filter.MaxPrice.Valid {
		add("start_price <= $%d::numeric", filter.MaxPrice.Decimal.String())
	}
	if len(filter.Query) != 0 {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	var query strings.Builder
	query.WriteString(selectListing)
	if len(conditions) != 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(conditions, " AND "))
	}

	switch filter.Sort {
	case entity.SortOldest:
		query.WriteString(" ORDER BY created_at ASC, id ASC")
	case entity.SortPriceAsc:
		query.WriteString(" ORDER BY start_price ASC, id ASC")
	case entity.SortPriceDesc:
		query.WriteString(" ORDER BY start_price DESC, id ASC")
	default:
		query.WriteString(" ORDER BY created_at DESC, id ASC")
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&query, " OFFSET $%d", len(args))
	}

	return query.String(), args
}

func scanListing(row rowScanner) (entity.Listing, error) {
	var (
		listing  entity.Listing
		id       string
		kind     string
		ownerID  string
		packages []byte
	)

	err := row.Scan(
		&id,
		&kind,
		&ownerID,
		&listing.Title,
		&listing.Description,
		&listing.Category,
		&packages,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		return entity.Listing{}, err
	}

	listing.ID = entity.ListingID(id)
	listing.Kind = entity.ListingKind(kind)
	listing.OwnerID = entity.UserID(ownerID)

	listing.Packages, err = unmarshalPackages(packages)
	if err != nil {
		return entity.Listing{}, err
	}

	return listing, nil
}

func marshalPackages(packages []entity.Package) ([]byte, error) {
	rows := make([]packageRow, 0, len(packages))
	for _, pkg := range packages {
		rows = append(rows, packageRow(pkg))
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing packages: %w", err)
	}

	return data, nil
}

func unmarshalPackages(data []byte) ([]entity.Package, error) {
	var rows []packageRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing packages: %w", err)
	}

	packages := make([]entity.Package, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, entity.Package(row))
	}

	return packages, nil
}
