package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/errors"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const selectOrder = `
	SELECT id, kind, buyer_id, seller_id, listing_id,
		title, package, price::text, currency, delivery_days, requirements,
		status, payment_status, checkout_session_id, payment_intent_id,
		created_at, updated_at
	FROM orders`

func (s *Postgres) CreateOrder(ctx context.Context, order entity.Order) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO orders (
			id, kind, buyer_id, seller_id, listing_id,
			title, package, price, currency, delivery_days, requirements,
			status, payment_status, checkout_session_id, payment_intent_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`,
		order.ID.String(),
		string(order.Kind),
		order.BuyerID.String(),
		order.SellerID.String(),
		order.ListingID.String(),
		order.Terms.Title,
		order.Terms.Package,
		order.Terms.Price.String(),
		order.Terms.Currency,
		order.Terms.DeliveryDays,
		order.Terms.Requirements,
		string(order.Status),
		string(order.PaymentStatus),
		order.CheckoutSessionID,
		order.PaymentIntentID,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (s *Postgres) GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	order, err := scanOrder(s.pool.QueryRow(ctx, selectOrder+` WHERE id = $1`, orderID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("failed to select order: %w", err)
	}

	return order, nil
}

func (s *Postgres) ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.UserID.Valid() {
		args = append(args, filter.UserID.String())
		switch filter.Side {
		case entity.PartyBuyer:
			conditions = append(conditions, fmt.Sprintf("buyer_id = $%d", len(args)))
		case entity.PartySeller:
			conditions = append(conditions, fmt.Sprintf("seller_id = $%d", len(args)))
		default:
			conditions = append(conditions, fmt.Sprintf("(buyer_id = $%d OR seller_id = $%d)", len(args), len(args)))
		}
	}
	if len(filter.Kind) != 0 {
		args = append(args, string(filter.Kind))
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if len(filter.Status) != 0 {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := selectOrder
	if len(conditions) != 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	return s.queryOrders(ctx, query, args...)
}

// UpdateOrder applies the update only if the row still matches its guards.
// The history row is written in the same transaction.
func (s *Postgres) UpdateOrder(ctx context.Context, update entity.OrderUpdate) (entity.Order, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to begin order update: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	before, err := scanOrder(tx.QueryRow(ctx, selectOrder+` WHERE id = $1 FOR UPDATE`, update.ID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("failed to lock order: %w", err)
	}

	if !update.Matches(before) {
		return entity.Order{}, storage.ErrOrderStatusMismatch
	}

	after := update.Apply(before)

	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $2, payment_status = $3, checkout_session_id = $4, payment_intent_id = $5, updated_at = $6
		WHERE id = $1 AND status = $7 AND payment_status = $8
	`,
		after.ID.String(),
		string(after.Status),
		string(after.PaymentStatus),
		after.CheckoutSessionID,
		after.PaymentIntentID,
		after.UpdatedAt,
		string(before.Status),
		string(before.PaymentStatus),
	)
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entity.Order{}, storage.ErrOrderStatusMismatch
	}

	record := entity.CreateStatusRecord(before, after, update.ActorID, update.Reason)
	_, err = tx.Exec(ctx, `
		INSERT INTO order_history (order_id, from_status, to_status, payment_status, actor_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		record.OrderID.String(),
		string(record.From),
		string(record.To),
		string(record.PaymentStatus),
		record.ActorID.String(),
		record.Reason,
		record.At,
	)
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to insert order history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return entity.Order{}, fmt.Errorf("failed to commit order update: %w", err)
	}

	return after, nil
}

func (s *Postgres) DeletePendingOrder(ctx context.Context, orderID entity.OrderID) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM orders WHERE id = $1 AND status = $2 AND payment_status <> $3
	`, orderID.String(), string(entity.StatusPending), string(entity.PaymentPaid))
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if tag.RowsAffected() != 0 {
		return nil
	}

	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return err
	}

	return storage.ErrOrderStatusMismatch
}

func (s *Postgres) GetOrderHistory(ctx context.Context, orderID entity.OrderID) (entity.StatusHistory, error) {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT order_id, from_status, to_status, payment_status, actor_id, reason, created_at
		FROM order_history WHERE order_id = $1 ORDER BY id
	`, orderID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to select order history: %w", err)
	}
	defer rows.Close()

	history := entity.StatusHistory{}
	for rows.Next() {
		var (
			record                   entity.StatusRecord
			id, from, to, payment, a string
		)

		if err := rows.Scan(&id, &from, &to, &payment, &a, &record.Reason, &record.At); err != nil {
			return nil, fmt.Errorf("failed to scan order history: %w", err)
		}

		record.OrderID = entity.OrderID(id)
		record.From = entity.OrderStatus(from)
		record.To = entity.OrderStatus(to)
		record.PaymentStatus = entity.PaymentStatus(payment)
		record.ActorID = entity.UserID(a)

		history = append(history, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order history: %w", err)
	}

	return history, nil
}

func (s *Postgres) GetOrdersForConfirmation(ctx context.Context, count, offset int, before time.Time, statuses []entity.OrderStatus) (entity.Orders, error) {
	return s.queryOrders(ctx, selectOrder+`
		WHERE checkout_session_id <> '' AND payment_status = $1 AND status = ANY($2) AND updated_at < $3
		ORDER BY created_at, id
		LIMIT $4 OFFSET $5
	`,
		string(entity.PaymentPending),
		statusStrings(statuses),
		before,
		count,
		offset,
	)
}

func (s *Postgres) GetOrdersForRefund(ctx context.Context, count, offset int) (entity.Orders, error) {
	return s.queryOrders(ctx, selectOrder+`
		WHERE status = $1 AND payment_status = $2
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4
	`,
		string(entity.StatusCancelled),
		string(entity.PaymentPaid),
		count,
		offset,
	)
}

func (s *Postgres) queryOrders(ctx context.Context, query string, args ...any) (entity.Orders, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	defer rows.Close()

	var orders entity.Orders
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

func scanOrder(row rowScanner) (entity.Order, error) {
	var (
		order                                  entity.Order
		id, kind, buyerID, sellerID, listingID string
		price, status, paymentStatus           string
	)

	err := row.Scan(
		&id,
		&kind,
		&buyerID,
		&sellerID,
		&listingID,
		&order.Terms.Title,
		&order.Terms.Package,
		&price,
		&order.Terms.Currency,
		&order.Terms.DeliveryDays,
		&order.Terms.Requirements,
		&status,
		&paymentStatus,
		&order.CheckoutSessionID,
		&order.PaymentIntentID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return entity.Order{}, err
	}

	order.Terms.Price, err = decimal.NewFromString(price)
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to parse order price: %w", err)
	}

	order.ID = entity.OrderID(id)
	order.Kind = entity.OrderKind(kind)
	order.BuyerID = entity.UserID(buyerID)
	order.SellerID = entity.UserID(sellerID)
	order.ListingID = entity.ListingID(listingID)
	order.Status = entity.OrderStatus(status)
	order.PaymentStatus = entity.PaymentStatus(paymentStatus)

	return order, nil
}

func statusStrings(statuses []entity.OrderStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, string(status))
	}

	return out
}
