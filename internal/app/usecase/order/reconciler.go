package order

import (
	"context"
	"time"

	"github.com/avGenie/flexihire/internal/app/config"
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/usecase/lifecycle"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reconciler.go -destination=mock/reconciler.go -package=mock

const (
	reconcileBatchLen = 10

	requestTimeout = 3 * time.Second
	settleTimeout  = 30 * time.Second
)

type PaymentSettler interface {
	ConfirmPayment(ctx context.Context, sessionID string) (entity.Order, error)
	RetryRefund(ctx context.Context, order entity.Order) entity.Order
}

type OrdersReconciler interface {
	GetOrdersForConfirmation(ctx context.Context, count, offset int, before time.Time, statuses []entity.OrderStatus) (entity.Orders, error)
	GetOrdersForRefund(ctx context.Context, count, offset int) (entity.Orders, error)
}

// Reconciler settles checkouts whose confirmation never arrived and retries
// refunds that failed during cancellation.
type Reconciler struct {
	storage     OrdersReconciler
	settler     PaymentSettler
	interval    time.Duration
	confirmable []entity.OrderStatus
	done        chan struct{}
	stopped     chan struct{}
}

func CreateReconciler(storage OrdersReconciler, settler PaymentSettler, config config.Config) *Reconciler {
	interval := config.ReconcileInterval
	if interval <= 0 {
		interval = time.Minute
	}

	return &Reconciler{
		storage:     storage,
		settler:     settler,
		interval:    interval,
		confirmable: lifecycle.Confirmable(),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
}

func (r *Reconciler) Start() {
	defer close(r.stopped)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			zap.L().Info("reconciler work has finished")
			return
		case <-ticker.C:
			r.Reconcile(time.Now().UTC().Add(-r.interval))
		}
	}
}

// Stop ends the loop and waits for the running pass to finish.
func (r *Reconciler) Stop() {
	close(r.done)
	<-r.stopped
}

// Reconcile runs one pass over both backlogs. Checkouts untouched since
// before are looked up at the gateway.
func (r *Reconciler) Reconcile(before time.Time) {
	r.confirmPayments(before)
	r.retryRefunds()
}

func (r *Reconciler) confirmPayments(before time.Time) {
	offset := 0
	for {
		orders := r.getOrders(func(ctx context.Context) (entity.Orders, error) {
			return r.storage.GetOrdersForConfirmation(ctx, reconcileBatchLen, offset, before, r.confirmable)
		})

		for _, order := range orders {
			if r.stopping() {
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
			updated, err := r.settler.ConfirmPayment(ctx, order.CheckoutSessionID)
			cancel()

			if err != nil {
				zap.L().Error("error while reconciling checkout", zap.String("order_id", order.ID.String()), zap.Error(err))
				offset++
				continue
			}

			// settled orders leave the backlog, the rest shift the window
			if updated.PaymentStatus == entity.PaymentPending {
				offset++
			}
		}

		if len(orders) < reconcileBatchLen {
			return
		}
	}
}

func (r *Reconciler) retryRefunds() {
	offset := 0
	for {
		orders := r.getOrders(func(ctx context.Context) (entity.Orders, error) {
			return r.storage.GetOrdersForRefund(ctx, reconcileBatchLen, offset)
		})

		for _, order := range orders {
			if r.stopping() {
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
			updated := r.settler.RetryRefund(ctx, order)
			cancel()

			if updated.PaymentStatus == entity.PaymentPaid {
				offset++
			}
		}

		if len(orders) < reconcileBatchLen {
			return
		}
	}
}

func (r *Reconciler) getOrders(get func(ctx context.Context) (entity.Orders, error)) entity.Orders {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	orders, err := get(ctx)
	if err != nil {
		zap.L().Error("error while getting orders for reconciliation", zap.Error(err))
		return nil
	}

	return orders
}

func (r *Reconciler) stopping() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}
