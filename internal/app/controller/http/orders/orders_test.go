package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avGenie/flexihire/internal/app/controller/http/orders/mock"
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
	err_usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/usecase/lifecycle"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errReader int

func (errReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("test error")
}

var (
	buyer = entity.Actor{ID: "ac2a4811-4f10-487f-bde3-e39a14af7cd8", Role: entity.RoleClient}

	storedOrder = entity.Order{
		ID:       "o1",
		Kind:     entity.KindOrder,
		BuyerID:  buyer.ID,
		SellerID: "seller",
		Terms: entity.Terms{
			Title:    "Logo design",
			Package:  "pro",
			Price:    decimal.RequireFromString("90"),
			Currency: "usd",
		},
		Status:        entity.StatusPending,
		PaymentStatus: entity.PaymentPending,
	}
)

func newRouter(handler Order) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/orders", handler.CreateOrder())
	r.Get("/api/orders", handler.GetUserOrders())
	r.Get("/api/orders/{id}", handler.GetOrder())
	r.Delete("/api/orders/{id}", handler.DeleteOrder())
	r.Post("/api/orders/{id}/checkout", handler.StartCheckout())
	r.Patch("/api/orders/{id}/status", handler.ChangeStatus())
	r.Post("/api/orders/{id}/cancel", handler.CancelOrder())
	r.Get("/api/orders/{id}/history", handler.GetHistory())
	r.Post("/api/listings/{id}/applications", handler.ApplyToJob())

	return r
}

func newRequest(method, target string, body io.Reader, userIDCtx *entity.UserIDCtx) *http.Request {
	request := httptest.NewRequest(method, target, body)
	if userIDCtx != nil {
		request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, *userIDCtx))
	}

	return request
}

func authorized(actor entity.Actor) *entity.UserIDCtx {
	userIDCtx := entity.CreateUserIDCtx(actor.ID, actor.Role, http.StatusOK)
	return &userIDCtx
}

func TestCreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)
	router := newRouter(New(s))

	type want struct {
		statusCode int
		reason     model.ErrorReason
	}
	tests := []struct {
		name        string
		body        io.Reader
		userIDCtx   *entity.UserIDCtx
		isCheckout  bool
		checkoutErr error

		want want
	}{
		{
			name:       "order placed",
			body:       strings.NewReader(`{"listingId": "l1", "package": "pro", "requirements": "blue"}`),
			userIDCtx:  authorized(buyer),
			isCheckout: true,

			want: want{
				statusCode: http.StatusCreated,
			},
		},
		{
			name:        "gateway is down",
			body:        strings.NewReader(`{"listingId": "l1", "package": "pro"}`),
			userIDCtx:   authorized(buyer),
			isCheckout:  true,
			checkoutErr: fmt.Errorf("error while creating checkout session: %w", err_usecase.ErrUpstream),

			want: want{
				statusCode: http.StatusBadGateway,
				reason:     model.ReasonUpstream,
			},
		},
		{
			name:      "empty listing id",
			body:      strings.NewReader(`{"package": "pro"}`),
			userIDCtx: authorized(buyer),

			want: want{
				statusCode: http.StatusBadRequest,
				reason:     model.ReasonValidation,
			},
		},
		{
			name:      "unreadable body",
			body:      errReader(0),
			userIDCtx: authorized(buyer),

			want: want{
				statusCode: http.StatusBadRequest,
				reason:     model.ReasonValidation,
			},
		},
		{
			name: "no context",
			body: strings.NewReader(`{"listingId": "l1"}`),

			want: want{
				statusCode: http.StatusUnauthorized,
				reason:     model.ReasonUnauthorized,
			},
		},
		{
			name:      "expired token",
			body:      strings.NewReader(`{"listingId": "l1"}`),
			userIDCtx: &entity.UserIDCtx{StatusCode: http.StatusUnauthorized},

			want: want{
				statusCode: http.StatusUnauthorized,
				reason:     model.ReasonUnauthorized,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.isCheckout {
				session := entity.CheckoutSession{ID: "cs_1", URL: "https://pay/cs_1"}
				if test.checkoutErr != nil {
					session = entity.CheckoutSession{}
				}

				s.EXPECT().
					Checkout(gomock.Any(), buyer, gomock.Any()).
					DoAndReturn(func(ctx context.Context, actor entity.Actor, request entity.PurchaseRequest) (entity.Order, entity.CheckoutSession, error) {
						assert.Equal(t, entity.ListingID("l1"), request.ListingID)
						assert.Equal(t, "pro", request.Package)

						return storedOrder, session, test.checkoutErr
					})
			}

			writer := httptest.NewRecorder()
			router.ServeHTTP(writer, newRequest(http.MethodPost, "/api/orders", test.body, test.userIDCtx))

			res := writer.Result()
			defer res.Body.Close()

			require.Equal(t, test.want.statusCode, res.StatusCode)

			if test.want.statusCode == http.StatusCreated {
				var body model.CheckoutResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
				assert.Equal(t, "https://pay/cs_1", body.CheckoutURL)
				assert.Equal(t, "o1", body.Order.ID)
				assert.Equal(t, "pending", body.Order.Status)
				return
			}

			var body model.ErrorResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, test.want.reason, body.Reason)
		})
	}
}

func TestChangeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)
	router := newRouter(New(s))

	seller := entity.Actor{ID: "seller", Role: entity.RoleFreelancer}

	type want struct {
		statusCode int
		reason     model.ErrorReason
	}
	tests := []struct {
		name      string
		body      string
		isChange  bool
		target    entity.OrderStatus
		changeErr error

		want want
	}{
		{
			name:     "work started",
			body:     `{"status": "in_progress"}`,
			isChange: true,
			target:   entity.StatusInProgress,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:      "completed order cannot restart",
			body:      `{"status": "in_progress"}`,
			isChange:  true,
			target:    entity.StatusInProgress,
			changeErr: &lifecycle.TransitionError{Kind: entity.KindOrder, From: entity.StatusCompleted, To: entity.StatusInProgress},

			want: want{
				statusCode: http.StatusConflict,
				reason:     model.ReasonInvalidTransition,
			},
		},
		{
			name:      "wrong party",
			body:      `{"status": "completed"}`,
			isChange:  true,
			target:    entity.StatusCompleted,
			changeErr: fmt.Errorf("%w: %w", err_usecase.ErrForbidden, lifecycle.ErrPartyNotAllowed),

			want: want{
				statusCode: http.StatusForbidden,
				reason:     model.ReasonForbidden,
			},
		},
		{
			name:      "unknown order",
			body:      `{"status": "review"}`,
			isChange:  true,
			target:    entity.StatusReview,
			changeErr: fmt.Errorf("%w: get order", err_usecase.ErrNotFound),

			want: want{
				statusCode: http.StatusNotFound,
				reason:     model.ReasonNotFound,
			},
		},
		{
			name: "empty status",
			body: `{"status": ""}`,

			want: want{
				statusCode: http.StatusBadRequest,
				reason:     model.ReasonValidation,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.isChange {
				changed := storedOrder
				changed.Status = test.target

				s.EXPECT().
					ChangeStatus(gomock.Any(), seller, entity.OrderID("o1"), test.target).
					Return(changed, test.changeErr)
			}

			writer := httptest.NewRecorder()
			router.ServeHTTP(writer, newRequest(http.MethodPatch, "/api/orders/o1/status", strings.NewReader(test.body), authorized(seller)))

			require.Equal(t, test.want.statusCode, writer.Code)

			if test.want.statusCode == http.StatusOK {
				var body model.OrderResponse
				require.NoError(t, json.NewDecoder(writer.Body).Decode(&body))
				assert.Equal(t, string(test.target), body.Status)
				return
			}

			var body model.ErrorResponse
			require.NoError(t, json.NewDecoder(writer.Body).Decode(&body))
			assert.Equal(t, test.want.reason, body.Reason)
		})
	}
}

func TestCancelOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)
	router := newRouter(New(s))

	cancelled := storedOrder
	cancelled.Status = entity.StatusCancelled
	cancelled.PaymentStatus = entity.PaymentRefunded

	s.EXPECT().Cancel(gomock.Any(), buyer, entity.OrderID("o1")).Return(cancelled, nil)

	writer := httptest.NewRecorder()
	router.ServeHTTP(writer, newRequest(http.MethodPost, "/api/orders/o1/cancel", nil, authorized(buyer)))

	require.Equal(t, http.StatusOK, writer.Code)

	var body model.OrderResponse
	require.NoError(t, json.NewDecoder(writer.Body).Decode(&body))
	assert.Equal(t, "cancelled", body.Status)
	assert.Equal(t, "refunded", body.PaymentStatus)
}

func TestGetUserOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)
	router := newRouter(New(s))

	s.EXPECT().
		List(gomock.Any(), buyer, entity.OrderFilter{Side: entity.PartyBuyer, Kind: entity.KindOrder}).
		Return(entity.Orders{storedOrder}, nil)

	writer := httptest.NewRecorder()
	router.ServeHTTP(writer, newRequest(http.MethodGet, "/api/orders?side=buyer&kind=order", nil, authorized(buyer)))

	require.Equal(t, http.StatusOK, writer.Code)

	var body model.Orders
	require.NoError(t, json.NewDecoder(writer.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Logo design", body[0].Terms.Title)

	writer = httptest.NewRecorder()
	router.ServeHTTP(writer, newRequest(http.MethodGet, "/api/orders?side=gateway", nil, authorized(buyer)))
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}

func TestOrderQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)
	router := newRouter(New(s))

	t.Run("get", func(t *testing.T) {
		s.EXPECT().Get(gomock.Any(), buyer, entity.OrderID("o1")).Return(storedOrder, nil)

		writer := httptest.NewRecorder()
		router.ServeHTTP(writer, newRequest(http.MethodGet, "/api/orders/o1", nil, authorized(buyer)))
		assert.Equal(t, http.StatusOK, writer.Code)
	})

	t.Run("history", func(t *testing.T) {
		s.EXPECT().
			History(gomock.Any(), buyer, entity.OrderID("o1")).
			Return(entity.StatusHistory{{From: entity.StatusPending, To: entity.StatusPaymentConfirmed, Reason: "payment confirmed"}}, nil)

		writer := httptest.NewRecorder()
		router.ServeHTTP(writer, newRequest(http.MethodGet, "/api/orders/o1/history", nil, authorized(buyer)))
		require.Equal(t, http.StatusOK, writer.Code)

		var body model.StatusHistory
		require.NoError(t, json.NewDecoder(writer.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "payment_confirmed", body[0].To)
	})

	t.Run("delete started order", func(t *testing.T) {
		s.EXPECT().Delete(gomock.Any(), buyer, entity.OrderID("o1")).Return(err_usecase.ErrConflict)

		writer := httptest.NewRecorder()
		router.ServeHTTP(writer, newRequest(http.MethodDelete, "/api/orders/o1", nil, authorized(buyer)))
		assert.Equal(t, http.StatusConflict, writer.Code)
	})

	t.Run("delete pending order", func(t *testing.T) {
		s.EXPECT().Delete(gomock.Any(), buyer, entity.OrderID("o1")).Return(nil)

		writer := httptest.NewRecorder()
		router.ServeHTTP(writer, newRequest(http.MethodDelete, "/api/orders/o1", nil, authorized(buyer)))
		assert.Equal(t, http.StatusNoContent, writer.Code)
	})

	t.Run("start checkout", func(t *testing.T) {
		s.EXPECT().
			StartCheckout(gomock.Any(), buyer, entity.OrderID("o1")).
			Return(storedOrder, entity.CheckoutSession{ID: "cs_2", URL: "https://pay/cs_2"}, nil)

		writer := httptest.NewRecorder()
		router.ServeHTTP(writer, newRequest(http.MethodPost, "/api/orders/o1/checkout", nil, authorized(buyer)))
		require.Equal(t, http.StatusOK, writer.Code)

		var body model.CheckoutResponse
		require.NoError(t, json.NewDecoder(writer.Body).Decode(&body))
		assert.Equal(t, "cs_2", body.SessionID)
	})
}

func TestApplyToJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)
	router := newRouter(New(s))

	freelancer := entity.Actor{ID: "freelancer", Role: entity.RoleFreelancer}
	application := entity.Order{ID: "a1", Kind: entity.KindJobApplication, BuyerID: buyer.ID, SellerID: freelancer.ID, Status: entity.StatusPending}

	s.EXPECT().
		Apply(gomock.Any(), freelancer, entity.ListingID("job1"), entity.ApplicationRequest{
			Bid:          decimal.RequireFromString("120.5"),
			DeliveryDays: 5,
			CoverLetter:  "hire me",
		}).
		Return(application, nil)

	body := strings.NewReader(`{"bid": "120.5", "deliveryDays": 5, "coverLetter": "hire me"}`)
	writer := httptest.NewRecorder()
	router.ServeHTTP(writer, newRequest(http.MethodPost, "/api/listings/job1/applications", body, authorized(freelancer)))

	require.Equal(t, http.StatusCreated, writer.Code)

	var response model.OrderResponse
	require.NoError(t, json.NewDecoder(writer.Body).Decode(&response))
	assert.Equal(t, "job_application", response.Kind)

	writer = httptest.NewRecorder()
	router.ServeHTTP(writer, newRequest(http.MethodPost, "/api/listings/job1/applications", strings.NewReader(`{"bid": 0}`), authorized(freelancer)))
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}
