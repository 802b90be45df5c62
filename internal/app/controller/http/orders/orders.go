package orders

import (
	"context"
	"fmt"
	"net/http"

	httputils "github.com/avGenie/flexihire/internal/app/controller/http/utils"
	"github.com/avGenie/flexihire/internal/app/converter"
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
	err_usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/validator"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orders.go -destination=mock/orders.go -package=mock

const (
	OrderIDParam   = "id"
	ListingIDParam = "id"
)

type OrderProcessor interface {
	Checkout(ctx context.Context, actor entity.Actor, request entity.PurchaseRequest) (entity.Order, entity.CheckoutSession, error)
	Apply(ctx context.Context, actor entity.Actor, jobID entity.ListingID, request entity.ApplicationRequest) (entity.Order, error)
	StartCheckout(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.Order, entity.CheckoutSession, error)
	Get(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.Order, error)
	List(ctx context.Context, actor entity.Actor, filter entity.OrderFilter) (entity.Orders, error)
	History(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.StatusHistory, error)
	Delete(ctx context.Context, actor entity.Actor, orderID entity.OrderID) error
	ChangeStatus(ctx context.Context, actor entity.Actor, orderID entity.OrderID, target entity.OrderStatus) (entity.Order, error)
	Cancel(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.Order, error)
}

type Order struct {
	service OrderProcessor
}

func New(service OrderProcessor) Order {
	return Order{
		service: service,
	}
}

// CreateOrder places an order for a service or post and answers with the
// checkout URL the buyer pays at.
func (o *Order) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		var request model.CheckoutRequest
		err = httputils.DecodeJSON(r, &request)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		if !validator.CheckoutRequest(request) {
			httputils.WriteError(w, fmt.Errorf("%w: empty listing id", err_usecase.ErrValidation))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.PaymentTimeout)
		defer cancel()

		order, session, err := o.service.Checkout(ctx, actor, converter.ConvertCheckoutRequestToPurchase(request))
		if err != nil {
			if order.ID.Valid() {
				zap.L().Info("order is left pending without checkout session", zap.String("order_id", order.ID.String()))
			}
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertCheckoutToResponse(order, session))
	}
}

func (o *Order) ApplyToJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		var request model.ApplicationRequest
		err = httputils.DecodeJSON(r, &request)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		if !validator.ApplicationRequest(request) {
			httputils.WriteError(w, fmt.Errorf("%w: bid and delivery days must be positive", err_usecase.ErrValidation))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		jobID := entity.ListingID(chi.URLParam(r, ListingIDParam))
		application, err := o.service.Apply(ctx, actor, jobID, converter.ConvertApplicationRequestToEntity(request))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertOrderToResponse(application))
	}
}

func (o *Order) StartCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.PaymentTimeout)
		defer cancel()

		order, session, err := o.service.StartCheckout(ctx, actor, orderID(r))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertCheckoutToResponse(order, session))
	}
}

func (o *Order) GetUserOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		query := r.URL.Query()
		filter := entity.OrderFilter{
			UserID: entity.UserID(query.Get("userId")),
			Side:   entity.Party(query.Get("side")),
			Kind:   entity.OrderKind(query.Get("kind")),
			Status: entity.OrderStatus(query.Get("status")),
		}

		if len(filter.Side) != 0 && filter.Side != entity.PartyBuyer && filter.Side != entity.PartySeller {
			httputils.WriteError(w, fmt.Errorf("%w: side must be buyer or seller", err_usecase.ErrValidation))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := o.service.List(ctx, actor, filter)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrdersToResponse(orders))
	}
}

func (o *Order) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := o.service.Get(ctx, actor, orderID(r))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (o *Order) GetHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		history, err := o.service.History(ctx, actor, orderID(r))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertHistoryToResponse(history))
	}
}

func (o *Order) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		err = o.service.Delete(ctx, actor, orderID(r))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (o *Order) ChangeStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		var request model.StatusRequest
		err = httputils.DecodeJSON(r, &request)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		if !validator.StatusRequest(request) {
			httputils.WriteError(w, fmt.Errorf("%w: empty status", err_usecase.ErrValidation))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := o.service.ChangeStatus(ctx, actor, orderID(r), entity.OrderStatus(request.Status))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

// CancelOrder answers with the cancelled order. Its payment status tells
// whether the refund has already gone through.
func (o *Order) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := o.service.Cancel(ctx, actor, orderID(r))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func orderID(r *http.Request) entity.OrderID {
	return entity.OrderID(chi.URLParam(r, OrderIDParam))
}
