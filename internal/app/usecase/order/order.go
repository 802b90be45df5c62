package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/flexihire/internal/app/config"
	"github.com/avGenie/flexihire/internal/app/entity"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/errors"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/usecase/lifecycle"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=order.go -destination=mock/order.go -package=mock

// casAttempts bounds how many times a lost compare-and-swap is re-evaluated
// against the fresh record.
const casAttempts = 3

type OrderStorage interface {
	GetListing(ctx context.Context, listingID entity.ListingID) (entity.Listing, error)

	CreateOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error)
	UpdateOrder(ctx context.Context, update entity.OrderUpdate) (entity.Order, error)
	DeletePendingOrder(ctx context.Context, orderID entity.OrderID) error
	GetOrderHistory(ctx context.Context, orderID entity.OrderID) (entity.StatusHistory, error)

	GetOrdersForConfirmation(ctx context.Context, count, offset int, before time.Time, statuses []entity.OrderStatus) (entity.Orders, error)
	GetOrdersForRefund(ctx context.Context, count, offset int) (entity.Orders, error)
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, request entity.SessionRequest) (entity.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (entity.CheckoutSession, error)
	Refund(ctx context.Context, paymentIntentID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.StatusEvent) error
}

type Service struct {
	storage   OrderStorage
	gateway   PaymentGateway
	publisher EventPublisher

	currency      string
	refundTimeout time.Duration
	now           func() time.Time
}

func NewService(storage OrderStorage, gateway PaymentGateway, publisher EventPublisher, config config.Config) *Service {
	return &Service{
		storage:       storage,
		gateway:       gateway,
		publisher:     publisher,
		currency:      config.Currency,
		refundTimeout: config.GatewayTimeout * time.Duration(config.RefundRetries+2),
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

func (s *Service) Get(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return entity.Order{}, err
	}

	if _, err := authorize(actor, order); err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

// List returns the engagements of the actor. Admins may list anyone's.
func (s *Service) List(ctx context.Context, actor entity.Actor, filter entity.OrderFilter) (entity.Orders, error) {
	if !actor.IsAdmin() || !filter.UserID.Valid() {
		filter.UserID = actor.ID
	}

	orders, err := s.storage.ListOrders(ctx, filter)
	if err != nil {
		return nil, convertStorageError(err, "list orders")
	}

	return orders, nil
}

func (s *Service) History(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.StatusHistory, error) {
	if _, err := s.Get(ctx, actor, orderID); err != nil {
		return nil, err
	}

	history, err := s.storage.GetOrderHistory(ctx, orderID)
	if err != nil {
		return nil, convertStorageError(err, "get order history")
	}

	return history, nil
}

// Delete removes a record its creator no longer wants, while nothing was paid.
func (s *Service) Delete(ctx context.Context, actor entity.Actor, orderID entity.OrderID) error {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return err
	}

	table, err := lifecycle.For(order.Kind)
	if err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrStorage, err)
	}

	party, isParty := order.PartyOf(actor.ID)
	if !actor.IsAdmin() && (!isParty || party != table.Creator()) {
		return fmt.Errorf("%w: only the %s may delete the %s", usecase.ErrForbidden, table.Creator(), order.Kind)
	}

	if order.Status != entity.StatusPending || order.PaymentStatus == entity.PaymentPaid {
		return fmt.Errorf("%w: %s in status %q with payment %q cannot be deleted",
			usecase.ErrConflict, order.Kind, order.Status, order.PaymentStatus)
	}

	err = s.storage.DeletePendingOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderStatusMismatch) {
			return fmt.Errorf("%w: %s changed before deletion", usecase.ErrConflict, order.Kind)
		}

		return convertStorageError(err, "delete order")
	}

	zap.L().Info("order deleted", zap.String("order_id", orderID.String()), zap.String("user_id", actor.ID.String()))

	return nil
}

func (s *Service) getOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return entity.Order{}, convertStorageError(err, "get order")
	}

	return order, nil
}

// update applies the compare-and-swap and publishes the change.
func (s *Service) update(ctx context.Context, before entity.Order, update entity.OrderUpdate) (entity.Order, error) {
	update.ID = before.ID
	update.At = s.now()

	after, err := s.storage.UpdateOrder(ctx, update)
	if err != nil {
		return entity.Order{}, err
	}

	s.publish(ctx, before, after, update.ActorID, update.Reason)

	return after, nil
}

func (s *Service) publish(ctx context.Context, before, after entity.Order, actorID entity.UserID, reason string) {
	if before.Status == after.Status && before.PaymentStatus == after.PaymentStatus {
		return
	}

	zap.L().Info("order status changed",
		zap.String("order_id", after.ID.String()),
		zap.String("from", string(before.Status)),
		zap.String("status", string(after.Status)),
		zap.String("payment_status", string(after.PaymentStatus)),
	)

	event := entity.StatusEvent{
		EventID:       uuid.NewString(),
		OrderID:       after.ID,
		Kind:          after.Kind,
		From:          before.Status,
		To:            after.Status,
		PaymentStatus: after.PaymentStatus,
		ActorID:       actorID,
		Reason:        reason,
		At:            after.UpdatedAt,
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		zap.L().Error("error while publishing status event", zap.String("order_id", after.ID.String()), zap.Error(err))
	}
}

// authorize returns the parties the actor may act as.
func authorize(actor entity.Actor, order entity.Order) ([]entity.Party, error) {
	if actor.IsAdmin() {
		return []entity.Party{entity.PartyBuyer, entity.PartySeller}, nil
	}

	party, ok := order.PartyOf(actor.ID)
	if !ok {
		return nil, fmt.Errorf("%w: user %s is not a party of order %s", usecase.ErrForbidden, actor.ID, order.ID)
	}

	return []entity.Party{party}, nil
}

func admitError(err error) error {
	if errors.Is(err, lifecycle.ErrPartyNotAllowed) {
		return fmt.Errorf("%w: %w", usecase.ErrForbidden, err)
	}

	return err
}

func convertStorageError(err error, operation string) error {
	switch {
	case errors.Is(err, storage.ErrOrderNotFound), errors.Is(err, storage.ErrListingNotFound):
		return fmt.Errorf("%w: %s: %w", usecase.ErrNotFound, operation, err)
	default:
		return fmt.Errorf("%w: %s: %w", usecase.ErrStorage, operation, err)
	}
}
