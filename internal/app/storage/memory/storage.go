// Package memory keeps the whole marketplace in process memory. It serves
// local runs without a database and the usecase tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/errors"
)

type Storage struct {
	mu sync.RWMutex

	users    map[entity.UserID]entity.User
	logins   map[string]entity.UserID
	listings map[entity.ListingID]entity.Listing
	orders   map[entity.OrderID]entity.Order
	history  map[entity.OrderID]entity.StatusHistory
}

func NewStorage() *Storage {
	return &Storage{
		users:    make(map[entity.UserID]entity.User),
		logins:   make(map[string]entity.UserID),
		listings: make(map[entity.ListingID]entity.Listing),
		orders:   make(map[entity.OrderID]entity.Order),
		history:  make(map[entity.OrderID]entity.StatusHistory),
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) CreateUser(ctx context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.logins[user.Login]; ok {
		return storage.ErrLoginExists
	}

	s.users[user.ID] = cloneUser(user)
	s.logins[user.Login] = user.ID

	return nil
}

func (s *Storage) GetUser(ctx context.Context, login string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.logins[login]
	if !ok {
		return entity.User{}, storage.ErrLoginNotFound
	}

	return cloneUser(s.users[userID]), nil
}

func (s *Storage) GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return entity.User{}, storage.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (s *Storage) UpdateProfile(ctx context.Context, userID entity.UserID, profile entity.Profile, at time.Time) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return entity.User{}, storage.ErrUserNotFound
	}

	user.Profile = profile
	user.UpdatedAt = at
	s.users[userID] = cloneUser(user)

	return cloneUser(user), nil
}

func (s *Storage) CreateListing(ctx context.Context, listing entity.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings[listing.ID] = cloneListing(listing)

	return nil
}

func (s *Storage) GetListing(ctx context.Context, listingID entity.ListingID) (entity.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return entity.Listing{}, storage.ErrListingNotFound
	}

	return cloneListing(listing), nil
}

func (s *Storage) UpdateListing(ctx context.Context, listing entity.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[listing.ID]; !ok {
		return storage.ErrListingNotFound
	}

	s.listings[listing.ID] = cloneListing(listing)

	return nil
}

func (s *Storage) DeleteListing(ctx context.Context, listingID entity.ListingID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[listingID]; !ok {
		return storage.ErrListingNotFound
	}

	delete(s.listings, listingID)

	return nil
}

func (s *Storage) ListListings(ctx context.Context, filter entity.ListingFilter) (entity.Listings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(filter.Query)

	var listings entity.Listings
	for _, listing := range s.listings {
		if len(filter.Kind) != 0 && listing.Kind != filter.Kind {
			continue
		}
		if len(filter.Category) != 0 && listing.Category != filter.Category {
			continue
		}
		if filter.OwnerID.Valid() && listing.OwnerID != filter.OwnerID {
			continue
		}

		price := listing.StartingPrice()
		if filter.MinPrice.Valid && price.LessThan(filter.MinPrice.Decimal) {
			continue
		}
		if filter.MaxPrice.Valid && price.GreaterThan(filter.MaxPrice.Decimal) {
			continue
		}

		if len(query) != 0 &&
			!strings.Contains(strings.ToLower(listing.Title), query) &&
			!strings.Contains(strings.ToLower(listing.Description), query) {
			continue
		}

		listings = append(listings, cloneListing(listing))
	}

	sortListings(listings, filter.Sort)

	return paginate(listings, filter.Offset, filter.Limit), nil
}

func (s *Storage) CreateOrder(ctx context.Context, order entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID] = order

	return nil
}

func (s *Storage) GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[orderID]
	if !ok {
		return entity.Order{}, storage.ErrOrderNotFound
	}

	return order, nil
}

func (s *Storage) ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders entity.Orders
	for _, order := range s.orders {
		switch filter.Side {
		case entity.PartyBuyer:
			if order.BuyerID != filter.UserID {
				continue
			}
		case entity.PartySeller:
			if order.SellerID != filter.UserID {
				continue
			}
		default:
			if filter.UserID.Valid() && order.BuyerID != filter.UserID && order.SellerID != filter.UserID {
				continue
			}
		}

		if len(filter.Kind) != 0 && order.Kind != filter.Kind {
			continue
		}
		if len(filter.Status) != 0 && order.Status != filter.Status {
			continue
		}

		orders = append(orders, order)
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}

		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

func (s *Storage) UpdateOrder(ctx context.Context, update entity.OrderUpdate) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.orders[update.ID]
	if !ok {
		return entity.Order{}, storage.ErrOrderNotFound
	}

	if !update.Matches(before) {
		return entity.Order{}, storage.ErrOrderStatusMismatch
	}

	after := update.Apply(before)
	s.orders[after.ID] = after
	s.history[after.ID] = append(s.history[after.ID], entity.CreateStatusRecord(before, after, update.ActorID, update.Reason))

	return after, nil
}

func (s *Storage) DeletePendingOrder(ctx context.Context, orderID entity.OrderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return storage.ErrOrderNotFound
	}

	if order.Status != entity.StatusPending || order.PaymentStatus == entity.PaymentPaid {
		return storage.ErrOrderStatusMismatch
	}

	delete(s.orders, orderID)
	delete(s.history, orderID)

	return nil
}

func (s *Storage) GetOrderHistory(ctx context.Context, orderID entity.OrderID) (entity.StatusHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.orders[orderID]; !ok {
		return nil, storage.ErrOrderNotFound
	}

	history := make(entity.StatusHistory, len(s.history[orderID]))
	copy(history, s.history[orderID])

	return history, nil
}

func (s *Storage) GetOrdersForConfirmation(ctx context.Context, count, offset int, before time.Time, statuses []entity.OrderStatus) (entity.Orders, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders entity.Orders
	for _, order := range s.orders {
		if len(order.CheckoutSessionID) == 0 || order.PaymentStatus != entity.PaymentPending {
			continue
		}
		if !slices.Contains(statuses, order.Status) {
			continue
		}
		if !order.UpdatedAt.Before(before) {
			continue
		}

		orders = append(orders, order)
	}

	sortOldestFirst(orders)

	return paginate(orders, offset, count), nil
}

func (s *Storage) GetOrdersForRefund(ctx context.Context, count, offset int) (entity.Orders, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders entity.Orders
	for _, order := range s.orders {
		if order.Status == entity.StatusCancelled && order.PaymentStatus == entity.PaymentPaid {
			orders = append(orders, order)
		}
	}

	sortOldestFirst(orders)

	return paginate(orders, offset, count), nil
}

func sortOldestFirst(orders entity.Orders) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID < orders[j].ID
		}

		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}

func sortListings(listings entity.Listings, order entity.ListingSort) {
	sort.Slice(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		switch order {
		case entity.SortOldest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		case entity.SortPriceAsc:
			if !a.StartingPrice().Equal(b.StartingPrice()) {
				return a.StartingPrice().LessThan(b.StartingPrice())
			}
		case entity.SortPriceDesc:
			if !a.StartingPrice().Equal(b.StartingPrice()) {
				return a.StartingPrice().GreaterThan(b.StartingPrice())
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}

		return a.ID < b.ID
	})
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]

	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

func cloneUser(user entity.User) entity.User {
	if user.Profile.Skills != nil {
		skills := make([]string, len(user.Profile.Skills))
		copy(skills, user.Profile.Skills)
		user.Profile.Skills = skills
	}

	return user
}

func cloneListing(listing entity.Listing) entity.Listing {
	if listing.Packages != nil {
		packages := make([]entity.Package, len(listing.Packages))
		copy(packages, listing.Packages)
		listing.Packages = packages
	}

	return listing
}
