package order

import (
	"context"
	"fmt"

	"github.com/avGenie/flexihire/internal/app/entity"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/usecase/lifecycle"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var orderKinds = map[entity.ListingKind]entity.OrderKind{
	entity.ListingService: entity.KindOrder,
	entity.ListingPost:    entity.KindPostOrder,
}

// Checkout creates an order for a service or post listing and opens a
// checkout session for it. On gateway failure the order stays pending
// without a session and the error is returned together with it.
func (s *Service) Checkout(ctx context.Context, actor entity.Actor, request entity.PurchaseRequest) (entity.Order, entity.CheckoutSession, error) {
	if !actor.HasRole(entity.RoleClient, entity.RoleUniversity, entity.RoleAdmin) {
		return entity.Order{}, entity.CheckoutSession{}, fmt.Errorf("%w: role %q cannot purchase", usecase.ErrForbidden, actor.Role)
	}

	listing, err := s.storage.GetListing(ctx, request.ListingID)
	if err != nil {
		return entity.Order{}, entity.CheckoutSession{}, convertStorageError(err, "get listing")
	}

	kind, ok := orderKinds[listing.Kind]
	if !ok {
		return entity.Order{}, entity.CheckoutSession{}, fmt.Errorf("%w: %s listings cannot be purchased", usecase.ErrValidation, listing.Kind)
	}

	if listing.OwnerID == actor.ID {
		return entity.Order{}, entity.CheckoutSession{}, fmt.Errorf("%w: own listing cannot be purchased", usecase.ErrForbidden)
	}

	pkg, ok := listing.Package(request.Package)
	if !ok {
		return entity.Order{}, entity.CheckoutSession{}, fmt.Errorf("%w: listing has no package %q", usecase.ErrValidation, request.Package)
	}

	order, err := s.create(ctx, kind, actor.ID, listing.OwnerID, listing.ID, entity.Terms{
		Title:        listing.Title,
		Package:      pkg.Name,
		Price:        pkg.Price,
		Currency:     s.currency,
		DeliveryDays: pkg.DeliveryDays,
		Requirements: request.Requirements,
	})
	if err != nil {
		return entity.Order{}, entity.CheckoutSession{}, err
	}

	return s.openSession(ctx, actor, order)
}

// Apply submits a freelancer's bid for a job listing.
func (s *Service) Apply(ctx context.Context, actor entity.Actor, jobID entity.ListingID, request entity.ApplicationRequest) (entity.Order, error) {
	if !actor.HasRole(entity.RoleFreelancer, entity.RoleUniversity, entity.RoleAdmin) {
		return entity.Order{}, fmt.Errorf("%w: role %q cannot apply to jobs", usecase.ErrForbidden, actor.Role)
	}

	if !request.Bid.IsPositive() || request.DeliveryDays <= 0 {
		return entity.Order{}, fmt.Errorf("%w: bid and delivery days must be positive", usecase.ErrValidation)
	}

	listing, err := s.storage.GetListing(ctx, jobID)
	if err != nil {
		return entity.Order{}, convertStorageError(err, "get listing")
	}

	if listing.Kind != entity.ListingJob {
		return entity.Order{}, fmt.Errorf("%w: %s listings do not take applications", usecase.ErrValidation, listing.Kind)
	}

	if listing.OwnerID == actor.ID {
		return entity.Order{}, fmt.Errorf("%w: own job cannot be applied to", usecase.ErrForbidden)
	}

	return s.create(ctx, entity.KindJobApplication, listing.OwnerID, actor.ID, listing.ID, entity.Terms{
		Title:        listing.Title,
		Package:      entity.DefaultPackage,
		Price:        request.Bid,
		Currency:     s.currency,
		DeliveryDays: request.DeliveryDays,
		Requirements: request.CoverLetter,
	})
}

// StartCheckout opens a new checkout session for a record awaiting payment.
func (s *Service) StartCheckout(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.Order, entity.CheckoutSession, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return entity.Order{}, entity.CheckoutSession{}, err
	}

	if order.BuyerID != actor.ID && !actor.IsAdmin() {
		return entity.Order{}, entity.CheckoutSession{}, fmt.Errorf("%w: only the buyer pays for %s", usecase.ErrForbidden, order.Kind)
	}

	table, err := lifecycle.For(order.Kind)
	if err != nil {
		return entity.Order{}, entity.CheckoutSession{}, fmt.Errorf("%w: %w", usecase.ErrStorage, err)
	}

	if !table.IsConfirmable(order.Status) ||
		order.PaymentStatus == entity.PaymentPaid ||
		order.PaymentStatus == entity.PaymentRefunded {
		return entity.Order{}, entity.CheckoutSession{}, fmt.Errorf("%w: %s in status %q with payment %q is not awaiting payment",
			usecase.ErrConflict, order.Kind, order.Status, order.PaymentStatus)
	}

	return s.openSession(ctx, actor, order)
}

func (s *Service) create(ctx context.Context, kind entity.OrderKind, buyerID, sellerID entity.UserID, listingID entity.ListingID, terms entity.Terms) (entity.Order, error) {
	table, err := lifecycle.For(kind)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}

	now := s.now()
	order := entity.Order{
		ID:            entity.OrderID(uuid.NewString()),
		Kind:          kind,
		BuyerID:       buyerID,
		SellerID:      sellerID,
		ListingID:     listingID,
		Terms:         terms,
		Status:        table.Initial(),
		PaymentStatus: entity.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.storage.CreateOrder(ctx, order); err != nil {
		return entity.Order{}, convertStorageError(err, "create order")
	}

	zap.L().Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("kind", string(kind)),
		zap.String("user_id", buyerID.String()),
	)

	return order, nil
}

func (s *Service) openSession(ctx context.Context, actor entity.Actor, order entity.Order) (entity.Order, entity.CheckoutSession, error) {
	session, err := s.gateway.CreateCheckoutSession(ctx, entity.SessionRequest{
		OrderID:  order.ID,
		Title:    fmt.Sprintf("%s (%s)", order.Terms.Title, order.Terms.Package),
		Amount:   order.Terms.Price,
		Currency: order.Terms.Currency,
	})
	if err != nil {
		zap.L().Error("error while creating checkout session", zap.String("order_id", order.ID.String()), zap.Error(err))

		return order, entity.CheckoutSession{}, fmt.Errorf("error while creating checkout session: %w", err)
	}

	updated, err := s.update(ctx, order, entity.OrderUpdate{
		FromStatuses:      []entity.OrderStatus{order.Status},
		FromPayments:      []entity.PaymentStatus{entity.PaymentPending, entity.PaymentFailed},
		PaymentStatus:     entity.PaymentPending,
		CheckoutSessionID: session.ID,
		ActorID:           actor.ID,
		Reason:            "checkout session opened",
	})
	if err != nil {
		return order, entity.CheckoutSession{}, convertStorageError(err, "store checkout session")
	}

	return updated, session, nil
}
