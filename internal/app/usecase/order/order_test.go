package order

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avGenie/flexihire/internal/app/config"
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/storage/memory"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/usecase/lifecycle"
	"github.com/avGenie/flexihire/internal/app/usecase/order/mock"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	client     = entity.Actor{ID: "client", Role: entity.RoleClient}
	freelancer = entity.Actor{ID: "freelancer", Role: entity.RoleFreelancer}
	stranger   = entity.Actor{ID: "stranger", Role: entity.RoleClient}
	admin      = entity.Actor{ID: "admin", Role: entity.RoleAdmin}

	errGateway = errors.New("gateway is down")
)

type fixture struct {
	service   *Service
	storage   *memory.Storage
	gateway   *mock.MockPaymentGateway
	publisher *mock.MockEventPublisher
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		storage:   memory.NewStorage(),
		gateway:   mock.NewMockPaymentGateway(ctrl),
		publisher: mock.NewMockEventPublisher(ctrl),
	}
	f.service = NewService(f.storage, f.gateway, f.publisher, config.Config{
		Currency:       "usd",
		GatewayTimeout: time.Second,
		RefundRetries:  1,
	})

	return f
}

func (f *fixture) publishAny() {
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) seedListing(t *testing.T, kind entity.ListingKind, owner entity.UserID) entity.Listing {
	listing := entity.Listing{
		ID:      entity.ListingID("listing-" + string(kind)),
		Kind:    kind,
		OwnerID: owner,
		Title:   "Logo design",
		Packages: []entity.Package{
			{Name: "basic", Price: decimal.RequireFromString("30.00"), DeliveryDays: 3},
			{Name: "pro", Price: decimal.RequireFromString("90.00"), DeliveryDays: 7},
		},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.storage.CreateListing(context.Background(), listing))

	return listing
}

func (f *fixture) seedOrder(t *testing.T, kind entity.OrderKind, status entity.OrderStatus, payment entity.PaymentStatus) entity.Order {
	order := entity.Order{
		ID:       entity.OrderID("order-" + string(kind) + "-" + string(status)),
		Kind:     kind,
		BuyerID:  client.ID,
		SellerID: freelancer.ID,
		Terms: entity.Terms{
			Title:    "Logo design",
			Package:  "basic",
			Price:    decimal.RequireFromString("30.00"),
			Currency: "usd",
		},
		Status:            status,
		PaymentStatus:     payment,
		CheckoutSessionID: "cs_1",
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
	if payment == entity.PaymentPaid {
		order.PaymentIntentID = "pi_1"
	}
	require.NoError(t, f.storage.CreateOrder(context.Background(), order))

	return order
}

func (f *fixture) stored(t *testing.T, orderID entity.OrderID) entity.Order {
	order, err := f.storage.GetOrder(context.Background(), orderID)
	require.NoError(t, err)

	return order
}

func TestCheckout(t *testing.T) {
	f := newFixture(t)
	f.publishAny()
	ctx := context.Background()

	listing := f.seedListing(t, entity.ListingService, freelancer.ID)

	f.gateway.EXPECT().
		CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request entity.SessionRequest) (entity.CheckoutSession, error) {
			assert.Equal(t, "Logo design (pro)", request.Title)
			assert.True(t, decimal.RequireFromString("90").Equal(request.Amount))
			assert.Equal(t, "usd", request.Currency)

			return entity.CheckoutSession{ID: "cs_1", URL: "https://pay/cs_1", OrderID: request.OrderID}, nil
		})

	order, session, err := f.service.Checkout(ctx, client, entity.PurchaseRequest{
		ListingID:    listing.ID,
		Package:      "pro",
		Requirements: "blue logo",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://pay/cs_1", session.URL)
	assert.Equal(t, entity.KindOrder, order.Kind)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "cs_1", order.CheckoutSessionID)
	assert.Equal(t, client.ID, order.BuyerID)
	assert.Equal(t, freelancer.ID, order.SellerID)
	assert.Equal(t, "pro", order.Terms.Package)
	assert.Equal(t, 7, order.Terms.DeliveryDays)
	assert.Equal(t, "blue logo", order.Terms.Requirements)

	listing.Title = "Renamed"
	listing.Packages[1].Price = decimal.NewFromInt(500)
	require.NoError(t, f.storage.UpdateListing(ctx, listing))
	require.NoError(t, f.storage.DeleteListing(ctx, listing.ID))

	stored := f.stored(t, order.ID)
	assert.Equal(t, "Logo design", stored.Terms.Title)
	assert.True(t, decimal.RequireFromString("90").Equal(stored.Terms.Price))
}

func TestCheckoutRejected(t *testing.T) {
	tests := []struct {
		name    string
		actor   entity.Actor
		kind    entity.ListingKind
		owner   entity.UserID
		pkg     string
		wantErr error
	}{
		{
			name:    "freelancer cannot purchase",
			actor:   freelancer,
			kind:    entity.ListingService,
			owner:   "someone",
			wantErr: usecase.ErrForbidden,
		},
		{
			name:    "own listing",
			actor:   client,
			kind:    entity.ListingService,
			owner:   client.ID,
			wantErr: usecase.ErrForbidden,
		},
		{
			name:    "job listing",
			actor:   client,
			kind:    entity.ListingJob,
			owner:   "someone",
			wantErr: usecase.ErrValidation,
		},
		{
			name:    "unknown package",
			actor:   client,
			kind:    entity.ListingService,
			owner:   freelancer.ID,
			pkg:     "premium",
			wantErr: usecase.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			listing := f.seedListing(t, test.kind, test.owner)

			f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Times(0)

			_, _, err := f.service.Checkout(context.Background(), test.actor, entity.PurchaseRequest{
				ListingID: listing.ID,
				Package:   test.pkg,
			})
			assert.ErrorIs(t, err, test.wantErr)
		})
	}

	t.Run("unknown listing", func(t *testing.T) {
		f := newFixture(t)

		_, _, err := f.service.Checkout(context.Background(), client, entity.PurchaseRequest{ListingID: "missing"})
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})
}

func TestCheckoutGatewayFailure(t *testing.T) {
	f := newFixture(t)
	listing := f.seedListing(t, entity.ListingPost, freelancer.ID)

	f.gateway.EXPECT().
		CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(entity.CheckoutSession{}, usecase.ErrUpstream)

	order, _, err := f.service.Checkout(context.Background(), client, entity.PurchaseRequest{ListingID: listing.ID})
	assert.ErrorIs(t, err, usecase.ErrUpstream)

	stored := f.stored(t, order.ID)
	assert.Equal(t, entity.KindPostOrder, stored.Kind)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Empty(t, stored.CheckoutSessionID)
}

func TestConfirmPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.seedOrder(t, entity.KindOrder, entity.StatusPending, entity.PaymentPending)

	paid := entity.CheckoutSession{ID: "cs_1", OrderID: order.ID, Outcome: entity.OutcomePaid, PaymentIntentID: "pi_1"}
	f.gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paid, nil).Times(2)
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event entity.StatusEvent) error {
			assert.Equal(t, order.ID, event.OrderID)
			assert.Equal(t, entity.StatusPending, event.From)
			assert.Equal(t, entity.StatusPaymentConfirmed, event.To)
			assert.Equal(t, entity.PaymentPaid, event.PaymentStatus)
			assert.NotEmpty(t, event.EventID)

			return nil
		}).
		Times(1)

	first, err := f.service.ConfirmPayment(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaymentConfirmed, first.Status)
	assert.Equal(t, entity.PaymentPaid, first.PaymentStatus)
	assert.Equal(t, "pi_1", first.PaymentIntentID)

	second, err := f.service.ConfirmPayment(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	history, err := f.storage.GetOrderHistory(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestConfirmPaymentOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		session     entity.CheckoutSession
		sessionErr  error
		wantErr     error
		wantStatus  entity.OrderStatus
		wantPayment entity.PaymentStatus
	}{
		{
			name:        "expired session fails payment",
			session:     entity.CheckoutSession{ID: "cs_1", OrderID: "order-order-pending", Outcome: entity.OutcomeExpired},
			wantStatus:  entity.StatusPending,
			wantPayment: entity.PaymentFailed,
		},
		{
			name:        "expired older session is ignored",
			session:     entity.CheckoutSession{ID: "cs_0", OrderID: "order-order-pending", Outcome: entity.OutcomeExpired},
			wantStatus:  entity.StatusPending,
			wantPayment: entity.PaymentPending,
		},
		{
			name:        "open session changes nothing",
			session:     entity.CheckoutSession{ID: "cs_1", OrderID: "order-order-pending", Outcome: entity.OutcomeOpen},
			wantStatus:  entity.StatusPending,
			wantPayment: entity.PaymentPending,
		},
		{
			name:        "gateway unreachable",
			sessionErr:  usecase.ErrUpstream,
			wantErr:     usecase.ErrUpstream,
			wantStatus:  entity.StatusPending,
			wantPayment: entity.PaymentPending,
		},
		{
			name:        "session without order",
			session:     entity.CheckoutSession{ID: "cs_1", Outcome: entity.OutcomePaid},
			wantErr:     usecase.ErrNotFound,
			wantStatus:  entity.StatusPending,
			wantPayment: entity.PaymentPending,
		},
		{
			name:        "session of unknown order",
			session:     entity.CheckoutSession{ID: "cs_1", OrderID: "missing", Outcome: entity.OutcomePaid},
			wantErr:     usecase.ErrNotFound,
			wantStatus:  entity.StatusPending,
			wantPayment: entity.PaymentPending,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			f.publishAny()
			order := f.seedOrder(t, entity.KindOrder, entity.StatusPending, entity.PaymentPending)

			f.gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(test.session, test.sessionErr)

			_, err := f.service.ConfirmPayment(context.Background(), "cs_1")
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
			} else {
				assert.NoError(t, err)
			}

			stored := f.stored(t, order.ID)
			assert.Equal(t, test.wantStatus, stored.Status)
			assert.Equal(t, test.wantPayment, stored.PaymentStatus)
		})
	}

	t.Run("empty session id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.ConfirmPayment(context.Background(), "")
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})
}

func TestLatePaymentIsRefunded(t *testing.T) {
	f := newFixture(t)
	f.publishAny()
	order := f.seedOrder(t, entity.KindOrder, entity.StatusCancelled, entity.PaymentPending)

	f.gateway.EXPECT().Refund(gomock.Any(), "pi_late").Return(nil)

	updated, err := f.service.ApplySession(context.Background(), entity.CheckoutSession{
		ID:              "cs_1",
		OrderID:         order.ID,
		Outcome:         entity.OutcomePaid,
		PaymentIntentID: "pi_late",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCancelled, updated.Status)
	assert.Equal(t, entity.PaymentRefunded, updated.PaymentStatus)
}

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		name       string
		kind       entity.OrderKind
		from       entity.OrderStatus
		payment    entity.PaymentStatus
		actor      entity.Actor
		target     entity.OrderStatus
		wantErr    error
		wantStatus entity.OrderStatus
	}{
		{
			name:       "seller starts work",
			kind:       entity.KindOrder,
			from:       entity.StatusPaymentConfirmed,
			payment:    entity.PaymentPaid,
			actor:      freelancer,
			target:     entity.StatusInProgress,
			wantStatus: entity.StatusInProgress,
		},
		{
			name:       "buyer accepts delivery",
			kind:       entity.KindPostOrder,
			from:       entity.StatusDelivered,
			payment:    entity.PaymentPaid,
			actor:      client,
			target:     entity.StatusCompleted,
			wantStatus: entity.StatusCompleted,
		},
		{
			name:       "admin drives seller edge",
			kind:       entity.KindOrder,
			from:       entity.StatusInProgress,
			payment:    entity.PaymentPaid,
			actor:      admin,
			target:     entity.StatusReview,
			wantStatus: entity.StatusReview,
		},
		{
			name:       "buyer cannot start work",
			kind:       entity.KindOrder,
			from:       entity.StatusPaymentConfirmed,
			payment:    entity.PaymentPaid,
			actor:      client,
			target:     entity.StatusInProgress,
			wantErr:    usecase.ErrForbidden,
			wantStatus: entity.StatusPaymentConfirmed,
		},
		{
			name:       "stranger is rejected",
			kind:       entity.KindOrder,
			from:       entity.StatusInProgress,
			payment:    entity.PaymentPaid,
			actor:      stranger,
			target:     entity.StatusReview,
			wantErr:    usecase.ErrForbidden,
			wantStatus: entity.StatusInProgress,
		},
		{
			name:       "completed order cannot restart",
			kind:       entity.KindOrder,
			from:       entity.StatusCompleted,
			payment:    entity.PaymentPaid,
			actor:      freelancer,
			target:     entity.StatusInProgress,
			wantErr:    lifecycle.ErrInvalidTransition,
			wantStatus: entity.StatusCompleted,
		},
		{
			name:       "payment cannot be confirmed by hand",
			kind:       entity.KindOrder,
			from:       entity.StatusPending,
			payment:    entity.PaymentPending,
			actor:      admin,
			target:     entity.StatusPaymentConfirmed,
			wantErr:    usecase.ErrForbidden,
			wantStatus: entity.StatusPending,
		},
		{
			name:       "job owner shortlists",
			kind:       entity.KindJobApplication,
			from:       entity.StatusPending,
			payment:    entity.PaymentPending,
			actor:      client,
			target:     entity.StatusShortlisted,
			wantStatus: entity.StatusShortlisted,
		},
		{
			name:       "unknown status",
			kind:       entity.KindOrder,
			from:       entity.StatusReview,
			payment:    entity.PaymentPaid,
			actor:      client,
			target:     entity.OrderStatus("archived"),
			wantErr:    lifecycle.ErrInvalidTransition,
			wantStatus: entity.StatusReview,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			f.publishAny()
			order := f.seedOrder(t, test.kind, test.from, test.payment)

			updated, err := f.service.ChangeStatus(context.Background(), test.actor, order.ID, test.target)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.wantStatus, updated.Status)
			}

			assert.Equal(t, test.wantStatus, f.stored(t, order.ID).Status)
		})
	}
}

func TestChangeStatusRejectsEveryPairOutsideTable(t *testing.T) {
	for _, kind := range lifecycle.Kinds() {
		table, err := lifecycle.For(kind)
		require.NoError(t, err)

		for _, from := range table.Statuses() {
			allowed := make(map[entity.OrderStatus]bool)
			for _, to := range table.Allowed(from, entity.PartyBuyer, entity.PartySeller) {
				allowed[to] = true
			}

			for _, to := range table.Statuses() {
				if allowed[to] || to == entity.StatusCancelled {
					continue
				}

				f := newFixture(t)
				order := f.seedOrder(t, kind, from, entity.PaymentPaid)

				_, err := f.service.ChangeStatus(context.Background(), admin, order.ID, to)
				assert.Error(t, err, "%s: %s -> %s", kind, from, to)
				assert.Equal(t, from, f.stored(t, order.ID).Status)
			}
		}
	}
}

func TestConcurrentChangeStatusSingleWinner(t *testing.T) {
	f := newFixture(t)
	f.publishAny()
	order := f.seedOrder(t, entity.KindOrder, entity.StatusReview, entity.PaymentPaid)

	targets := []entity.OrderStatus{entity.StatusCompleted, entity.StatusRevision}
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target entity.OrderStatus) {
			defer wg.Done()
			_, errs[i] = f.service.ChangeStatus(context.Background(), client, order.ID, target)
		}(i, target)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	history, err := f.storage.GetOrderHistory(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCancel(t *testing.T) {
	t.Run("paid order is refunded", func(t *testing.T) {
		f := newFixture(t)
		f.publishAny()
		order := f.seedOrder(t, entity.KindOrder, entity.StatusInProgress, entity.PaymentPaid)

		f.gateway.EXPECT().Refund(gomock.Any(), "pi_1").Return(nil)

		updated, err := f.service.Cancel(context.Background(), client, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, updated.Status)
		assert.Equal(t, entity.PaymentRefunded, updated.PaymentStatus)
		assert.Equal(t, updated, f.stored(t, order.ID))
	})

	t.Run("refund failure keeps cancellation", func(t *testing.T) {
		f := newFixture(t)
		f.publishAny()
		order := f.seedOrder(t, entity.KindOrder, entity.StatusInProgress, entity.PaymentPaid)

		f.gateway.EXPECT().Refund(gomock.Any(), "pi_1").Return(errGateway)

		updated, err := f.service.ChangeStatus(context.Background(), client, order.ID, entity.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, updated.Status)
		assert.Equal(t, entity.PaymentPaid, updated.PaymentStatus)

		f.gateway.EXPECT().Refund(gomock.Any(), "pi_1").Return(nil)

		reconciler := CreateReconciler(f.storage, f.service, config.Config{ReconcileInterval: time.Minute})
		reconciler.Reconcile(time.Now().UTC().Add(-time.Minute))

		assert.Equal(t, entity.PaymentRefunded, f.stored(t, order.ID).PaymentStatus)
	})

	t.Run("unpaid order is not refunded", func(t *testing.T) {
		f := newFixture(t)
		f.publishAny()
		order := f.seedOrder(t, entity.KindOrder, entity.StatusPending, entity.PaymentPending)

		f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).Times(0)

		updated, err := f.service.Cancel(context.Background(), client, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, updated.Status)
		assert.Equal(t, entity.PaymentPending, updated.PaymentStatus)
	})

	t.Run("seller cannot cancel order", func(t *testing.T) {
		f := newFixture(t)
		order := f.seedOrder(t, entity.KindOrder, entity.StatusInProgress, entity.PaymentPaid)

		_, err := f.service.Cancel(context.Background(), freelancer, order.ID)
		assert.ErrorIs(t, err, usecase.ErrForbidden)
	})

	t.Run("applicant withdraws application", func(t *testing.T) {
		f := newFixture(t)
		f.publishAny()
		order := f.seedOrder(t, entity.KindJobApplication, entity.StatusShortlisted, entity.PaymentPending)

		updated, err := f.service.Cancel(context.Background(), freelancer, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, updated.Status)
	})

	t.Run("delivered post order cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)
		order := f.seedOrder(t, entity.KindPostOrder, entity.StatusDelivered, entity.PaymentPaid)

		_, err := f.service.Cancel(context.Background(), client, order.ID)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Equal(t, entity.StatusDelivered, f.stored(t, order.ID).Status)
	})
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		kind    entity.OrderKind
		status  entity.OrderStatus
		payment entity.PaymentStatus
		actor   entity.Actor
		wantErr error
	}{
		{
			name:    "buyer deletes pending order",
			kind:    entity.KindOrder,
			status:  entity.StatusPending,
			payment: entity.PaymentPending,
			actor:   client,
		},
		{
			name:    "applicant deletes pending application",
			kind:    entity.KindJobApplication,
			status:  entity.StatusPending,
			payment: entity.PaymentPending,
			actor:   freelancer,
		},
		{
			name:    "admin deletes failed checkout",
			kind:    entity.KindPostOrder,
			status:  entity.StatusPending,
			payment: entity.PaymentFailed,
			actor:   admin,
		},
		{
			name:    "seller cannot delete order",
			kind:    entity.KindOrder,
			status:  entity.StatusPending,
			payment: entity.PaymentPending,
			actor:   freelancer,
			wantErr: usecase.ErrForbidden,
		},
		{
			name:    "started order",
			kind:    entity.KindOrder,
			status:  entity.StatusInProgress,
			payment: entity.PaymentPaid,
			actor:   client,
			wantErr: usecase.ErrConflict,
		},
		{
			name:    "paid pending order",
			kind:    entity.KindOrder,
			status:  entity.StatusPending,
			payment: entity.PaymentPaid,
			actor:   client,
			wantErr: usecase.ErrConflict,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			order := f.seedOrder(t, test.kind, test.status, test.payment)

			err := f.service.Delete(context.Background(), test.actor, order.ID)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				f.stored(t, order.ID)
				return
			}

			require.NoError(t, err)
			_, err = f.service.Get(context.Background(), admin, order.ID)
			assert.ErrorIs(t, err, usecase.ErrNotFound)
		})
	}
}

func TestJobApplicationFlow(t *testing.T) {
	f := newFixture(t)
	f.publishAny()
	ctx := context.Background()

	job := f.seedListing(t, entity.ListingJob, client.ID)

	application, err := f.service.Apply(ctx, freelancer, job.ID, entity.ApplicationRequest{
		Bid:          decimal.NewFromInt(120),
		DeliveryDays: 5,
		CoverLetter:  "I did this before",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.KindJobApplication, application.Kind)
	assert.Equal(t, client.ID, application.BuyerID)
	assert.Equal(t, freelancer.ID, application.SellerID)
	assert.Equal(t, entity.StatusPending, application.Status)

	_, _, err = f.service.StartCheckout(ctx, client, application.ID)
	assert.ErrorIs(t, err, usecase.ErrConflict)

	_, err = f.service.ChangeStatus(ctx, client, application.ID, entity.StatusShortlisted)
	require.NoError(t, err)

	_, _, err = f.service.StartCheckout(ctx, freelancer, application.ID)
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	f.gateway.EXPECT().
		CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(entity.CheckoutSession{ID: "cs_job", OrderID: application.ID}, nil)

	_, session, err := f.service.StartCheckout(ctx, client, application.ID)
	require.NoError(t, err)
	assert.Equal(t, "cs_job", session.ID)

	confirmed, err := f.service.ApplySession(ctx, entity.CheckoutSession{
		ID:              "cs_job",
		OrderID:         application.ID,
		Outcome:         entity.OutcomePaid,
		PaymentIntentID: "pi_job",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaymentConfirmed, confirmed.Status)
	assert.Equal(t, entity.PaymentPaid, confirmed.PaymentStatus)

	history, err := f.service.History(ctx, freelancer, application.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, entity.StatusShortlisted, history[0].To)
	assert.Equal(t, entity.StatusPaymentConfirmed, history[2].To)

	_, err = f.service.History(ctx, stranger, application.ID)
	assert.ErrorIs(t, err, usecase.ErrForbidden)
}

func TestApplyRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job := f.seedListing(t, entity.ListingJob, client.ID)
	service := f.seedListing(t, entity.ListingService, "someone")

	_, err := f.service.Apply(ctx, client, job.ID, entity.ApplicationRequest{Bid: decimal.NewFromInt(10), DeliveryDays: 1})
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	_, err = f.service.Apply(ctx, freelancer, service.ID, entity.ApplicationRequest{Bid: decimal.NewFromInt(10), DeliveryDays: 1})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = f.service.Apply(ctx, freelancer, job.ID, entity.ApplicationRequest{Bid: decimal.Zero, DeliveryDays: 1})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedOrder(t, entity.KindOrder, entity.StatusPending, entity.PaymentPending)
	f.seedOrder(t, entity.KindPostOrder, entity.StatusInProgress, entity.PaymentPaid)

	orders, err := f.service.List(ctx, client, entity.OrderFilter{UserID: "someone-else", Side: entity.PartyBuyer})
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = f.service.List(ctx, freelancer, entity.OrderFilter{Kind: entity.KindPostOrder})
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = f.service.List(ctx, stranger, entity.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)

	orders, err = f.service.List(ctx, admin, entity.OrderFilter{UserID: client.ID})
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockOrderStorage(ctrl)
	service := NewService(storage, mock.NewMockPaymentGateway(ctrl), mock.NewMockEventPublisher(ctrl), config.Config{})

	storage.EXPECT().GetOrder(gomock.Any(), entity.OrderID("o1")).Return(entity.Order{}, errors.New("connection refused"))

	_, err := service.Get(context.Background(), client, "o1")
	assert.ErrorIs(t, err, usecase.ErrStorage)
}
