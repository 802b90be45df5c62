package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingID string

func (l ListingID) String() string {
	return string(l)
}

type ListingKind string

const (
	ListingService ListingKind = `service`
	ListingPost    ListingKind = `post`
	ListingJob     ListingKind = `job`
)

func (k ListingKind) Valid() bool {
	switch k {
	case ListingService, ListingPost, ListingJob:
		return true
	default:
		return false
	}
}

// DefaultPackage names the single package of post and job listings.
const DefaultPackage = `default`

type Package struct {
	Name         string
	Price        decimal.Decimal
	DeliveryDays int
	Description  string
}

type Listings []Listing

type Listing struct {
	ID          ListingID
	Kind        ListingKind
	OwnerID     UserID
	Title       string
	Description string
	Category    string
	Packages    []Package
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l Listing) Package(name string) (Package, bool) {
	if len(name) == 0 && len(l.Packages) != 0 {
		return l.Packages[0], true
	}

	for _, pkg := range l.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}

	return Package{}, false
}

// StartingPrice is the lowest package price, used for filtering and sorting.
func (l Listing) StartingPrice() decimal.Decimal {
	if len(l.Packages) == 0 {
		return decimal.Zero
	}

	price := l.Packages[0].Price
	for _, pkg := range l.Packages[1:] {
		if pkg.Price.LessThan(price) {
			price = pkg.Price
		}
	}

	return price
}

type ListingSort string

const (
	SortNewest    ListingSort = `newest`
	SortOldest    ListingSort = `oldest`
	SortPriceAsc  ListingSort = `price_asc`
	SortPriceDesc ListingSort = `price_desc`
)

func (s ListingSort) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc:
		return true
	default:
		return false
	}
}

type ListingFilter struct {
	Kind     ListingKind
	Category string
	OwnerID  UserID
	MinPrice decimal.NullDecimal
	MaxPrice decimal.NullDecimal
	Query    string
	Sort     ListingSort
	Limit    int
	Offset   int
}
