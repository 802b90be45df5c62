package model

import (
	"context"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
)

type Storage interface {
	Close() error

	CreateUser(ctx context.Context, user entity.User) error
	GetUser(ctx context.Context, login string) (entity.User, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)
	UpdateProfile(ctx context.Context, userID entity.UserID, profile entity.Profile, at time.Time) (entity.User, error)

	CreateListing(ctx context.Context, listing entity.Listing) error
	GetListing(ctx context.Context, listingID entity.ListingID) (entity.Listing, error)
	UpdateListing(ctx context.Context, listing entity.Listing) error
	DeleteListing(ctx context.Context, listingID entity.ListingID) error
	ListListings(ctx context.Context, filter entity.ListingFilter) (entity.Listings, error)

	CreateOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error)
	UpdateOrder(ctx context.Context, update entity.OrderUpdate) (entity.Order, error)
	DeletePendingOrder(ctx context.Context, orderID entity.OrderID) error
	GetOrderHistory(ctx context.Context, orderID entity.OrderID) (entity.StatusHistory, error)

	GetOrdersForConfirmation(ctx context.Context, count, offset int, before time.Time, statuses []entity.OrderStatus) (entity.Orders, error)
	GetOrdersForRefund(ctx context.Context, count, offset int) (entity.Orders, error)
}
