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

// ChangeStatus moves the record along its lifecycle on behalf of one of its
// parties. Payment confirmation is not reachable from here.
func (s *Service) ChangeStatus(ctx context.Context, actor entity.Actor, orderID entity.OrderID, target entity.OrderStatus) (entity.Order, error) {
	if target == entity.StatusCancelled {
		return s.Cancel(ctx, actor, orderID)
	}

	return s.transit(ctx, actor, orderID, "status changed", func(table *lifecycle.Table, order entity.Order, parties []entity.Party) (entity.OrderStatus, error) {
		return target, table.Admit(order.Status, target, parties...)
	})
}

// Cancel stops the record. A captured payment is refunded; the cancellation
// holds even when the refund fails.
func (s *Service) Cancel(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.Order, error) {
	order, err := s.transit(ctx, actor, orderID, "cancelled", func(table *lifecycle.Table, order entity.Order, parties []entity.Party) (entity.OrderStatus, error) {
		return entity.StatusCancelled, table.AdmitCancel(order.Status, parties...)
	})
	if err != nil {
		return entity.Order{}, err
	}

	if order.PaymentStatus == entity.PaymentPaid {
		order = s.refund(ctx, order, actor.ID)
	}

	return order, nil
}

type admitFunc func(table *lifecycle.Table, order entity.Order, parties []entity.Party) (entity.OrderStatus, error)

func (s *Service) transit(ctx context.Context, actor entity.Actor, orderID entity.OrderID, reason string, admit admitFunc) (entity.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return entity.Order{}, err
	}

	parties, err := authorize(actor, order)
	if err != nil {
		return entity.Order{}, err
	}

	table, err := lifecycle.For(order.Kind)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%w: %w", usecase.ErrStorage, err)
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		target, err := admit(table, order, parties)
		if err != nil {
			zap.L().Info("status change rejected",
				zap.String("order_id", order.ID.String()),
				zap.String("user_id", actor.ID.String()),
				zap.Error(err),
			)

			return entity.Order{}, admitError(err)
		}

		updated, err := s.update(ctx, order, entity.OrderUpdate{
			FromStatuses: []entity.OrderStatus{order.Status},
			Status:       target,
			ActorID:      actor.ID,
			Reason:       reason,
		})
		if err == nil {
			return updated, nil
		}

		if !errors.Is(err, storage.ErrOrderStatusMismatch) {
			return entity.Order{}, convertStorageError(err, "update order status")
		}

		order, err = s.getOrder(ctx, orderID)
		if err != nil {
			return entity.Order{}, err
		}
	}

	return entity.Order{}, fmt.Errorf("%w: order %s keeps changing", usecase.ErrConflict, orderID)
}
