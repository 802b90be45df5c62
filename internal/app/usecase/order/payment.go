package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/avGenie/flexihire/internal/app/entity"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/errors"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/usecase/lifecycle"
	"go.uber.org/zap"
)

var unpaid = []entity.PaymentStatus{entity.PaymentPending, entity.PaymentFailed}

// ConfirmPayment looks the checkout session up at the gateway and settles the
// order it belongs to. Confirming the same session again changes nothing.
func (s *Service) ConfirmPayment(ctx context.Context, sessionID string) (entity.Order, error) {
	if len(sessionID) == 0 {
		return entity.Order{}, fmt.Errorf("%w: empty checkout session id", usecase.ErrValidation)
	}

	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while retrieving checkout session: %w", err)
	}

	return s.ApplySession(ctx, session)
}

// ApplySession settles the order of an already retrieved session. The gateway
// is not contacted unless a captured payment has to be returned.
func (s *Service) ApplySession(ctx context.Context, session entity.CheckoutSession) (entity.Order, error) {
	if !session.OrderID.Valid() {
		return entity.Order{}, fmt.Errorf("%w: checkout session %s carries no order", usecase.ErrNotFound, session.ID)
	}

	order, err := s.getOrder(ctx, session.OrderID)
	if err != nil {
		return entity.Order{}, err
	}

	table, err := lifecycle.For(order.Kind)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%w: %w", usecase.ErrStorage, err)
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		if order.PaymentStatus == entity.PaymentPaid || order.PaymentStatus == entity.PaymentRefunded {
			return order, nil
		}

		var updated entity.Order
		switch session.Outcome {
		case entity.OutcomePaid:
			updated, err = s.capture(ctx, table, order, session)
		case entity.OutcomeExpired:
			if order.PaymentStatus != entity.PaymentPending || order.CheckoutSessionID != session.ID {
				return order, nil
			}

			updated, err = s.update(ctx, order, entity.OrderUpdate{
				FromStatuses:  []entity.OrderStatus{order.Status},
				FromPayments:  []entity.PaymentStatus{entity.PaymentPending},
				PaymentStatus: entity.PaymentFailed,
				Reason:        "checkout session expired",
			})
		default:
			return order, nil
		}

		if err == nil {
			return updated, nil
		}

		if !errors.Is(err, storage.ErrOrderStatusMismatch) {
			return entity.Order{}, convertStorageError(err, "confirm payment")
		}

		order, err = s.getOrder(ctx, order.ID)
		if err != nil {
			return entity.Order{}, err
		}
	}

	return entity.Order{}, fmt.Errorf("%w: order %s keeps changing during payment confirmation", usecase.ErrConflict, order.ID)
}

// capture records a successful payment. An order that can no longer accept
// it keeps its status and the payment is refunded.
func (s *Service) capture(ctx context.Context, table *lifecycle.Table, order entity.Order, session entity.CheckoutSession) (entity.Order, error) {
	if table.IsConfirmable(order.Status) {
		return s.update(ctx, order, entity.OrderUpdate{
			FromStatuses:      table.Confirmable(),
			FromPayments:      unpaid,
			Status:            entity.StatusPaymentConfirmed,
			PaymentStatus:     entity.PaymentPaid,
			CheckoutSessionID: session.ID,
			PaymentIntentID:   session.PaymentIntentID,
			Reason:            "payment confirmed",
		})
	}

	zap.L().Warn("payment arrived for order that cannot accept it",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)),
	)

	captured, err := s.update(ctx, order, entity.OrderUpdate{
		FromStatuses:      []entity.OrderStatus{order.Status},
		FromPayments:      unpaid,
		PaymentStatus:     entity.PaymentPaid,
		CheckoutSessionID: session.ID,
		PaymentIntentID:   session.PaymentIntentID,
		Reason:            "late payment captured",
	})
	if err != nil {
		return entity.Order{}, err
	}

	return s.refund(ctx, captured, ""), nil
}

// RetryRefund returns the payment of a cancelled order whose earlier refund
// failed.
func (s *Service) RetryRefund(ctx context.Context, order entity.Order) entity.Order {
	if order.Status != entity.StatusCancelled || order.PaymentStatus != entity.PaymentPaid {
		return order
	}

	return s.refund(ctx, order, "")
}

// refund never fails the caller: on gateway failure the order stays paid and
// the reconciler picks it up later.
func (s *Service) refund(ctx context.Context, order entity.Order, actorID entity.UserID) entity.Order {
	logger := zap.L().With(zap.String("order_id", order.ID.String()))

	if len(order.PaymentIntentID) == 0 {
		logger.Error("paid order has no payment intent to refund")
		return order
	}

	refundCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refundTimeout)
	defer cancel()

	if err := s.gateway.Refund(refundCtx, order.PaymentIntentID); err != nil {
		logger.Error("error while refunding order payment", zap.Error(err))
		return order
	}

	refunded, err := s.update(refundCtx, order, entity.OrderUpdate{
		FromStatuses:  []entity.OrderStatus{order.Status},
		FromPayments:  []entity.PaymentStatus{entity.PaymentPaid},
		PaymentStatus: entity.PaymentRefunded,
		ActorID:       actorID,
		Reason:        "payment refunded",
	})
	if err != nil {
		logger.Error("error while storing refunded payment", zap.Error(err))
		return order
	}

	logger.Info("order payment refunded")

	return refunded
}
