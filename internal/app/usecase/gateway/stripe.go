// Package gateway talks to the Stripe payment API: checkout sessions,
// refunds and signed webhooks.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avGenie/flexihire/internal/app/config"
	"github.com/avGenie/flexihire/internal/app/entity"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/sethvargo/go-retry"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

const (
	MetadataOrderID = "order_id"

	refundBaseDelay = 200 * time.Millisecond
)

type Stripe struct {
	api *client.API

	successURL    string
	cancelURL     string
	webhookSecret string
	refundRetries uint64
}

type Option func(*stripe.BackendConfig)

// WithBackendURL points the client to another API host.
func WithBackendURL(url string) Option {
	return func(c *stripe.BackendConfig) {
		c.URL = stripe.String(url)
	}
}

func New(config config.Config, opts ...Option) *Stripe {
	backendConfig := &stripe.BackendConfig{
		HTTPClient: &http.Client{
			Timeout: config.GatewayTimeout,
		},
		LeveledLogger:     zap.S(),
		MaxNetworkRetries: stripe.Int64(0),
	}
	for _, opt := range opts {
		opt(backendConfig)
	}

	api := &client.API{}
	api.Init(config.StripeSecretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig),
	})

	return &Stripe{
		api:           api,
		successURL:    config.CheckoutSuccessURL,
		cancelURL:     config.CheckoutCancelURL,
		webhookSecret: config.StripeWebhookSecret,
		refundRetries: config.RefundRetries,
	}
}

func (s *Stripe) CreateCheckoutSession(ctx context.Context, request entity.SessionRequest) (entity.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
		ClientReferenceID: stripe.String(request.OrderID.String()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(request.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(request.Title),
					},
					UnitAmount: stripe.Int64(MinorUnits(request)),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata(MetadataOrderID, request.OrderID.String())

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return entity.CheckoutSession{}, convertError(err, "create checkout session")
	}

	return convertSession(session), nil
}

func (s *Stripe) RetrieveSession(ctx context.Context, sessionID string) (entity.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := s.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return entity.CheckoutSession{}, convertError(err, "retrieve checkout session")
	}

	return convertSession(session), nil
}

// Refund returns the captured payment of the intent. Network and server
// failures are retried with exponential backoff; an intent refunded before
// counts as success.
func (s *Stripe) Refund(ctx context.Context, paymentIntentID string) error {
	backoff := retry.WithMaxRetries(s.refundRetries, retry.NewExponential(refundBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		params := &stripe.RefundParams{
			PaymentIntent: stripe.String(paymentIntentID),
			Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
		}
		params.Context = ctx
		params.SetIdempotencyKey("refund-" + paymentIntentID)

		_, err := s.api.Refunds.New(params)
		if err == nil {
			return nil
		}

		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeChargeAlreadyRefunded {
			zap.L().Info("payment intent is already refunded", zap.String("payment_intent_id", paymentIntentID))
			return nil
		}

		converted := convertError(err, "create refund")
		if isRetryable(err) {
			zap.L().Warn("refund attempt failed", zap.String("payment_intent_id", paymentIntentID), zap.Error(err))
			return retry.RetryableError(converted)
		}

		return converted
	})
}

// Stripe takes these currencies in whole units.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {}, "mga": {},
	"pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

func MinorUnits(request entity.SessionRequest) int64 {
	return request.Amount.Shift(currencyExponent(request.Currency)).Round(0).IntPart()
}

func currencyExponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToLower(currency)]; ok {
		return 0
	}

	return 2
}

func convertSession(session *stripe.CheckoutSession) entity.CheckoutSession {
	out := entity.CheckoutSession{
		ID:      session.ID,
		URL:     session.URL,
		OrderID: entity.OrderID(session.Metadata[MetadataOrderID]),
		Outcome: sessionOutcome(session),
	}
	if session.PaymentIntent != nil {
		out.PaymentIntentID = session.PaymentIntent.ID
	}

	return out
}

func sessionOutcome(session *stripe.CheckoutSession) entity.SessionOutcome {
	switch {
	case session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		session.PaymentStatus == stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return entity.OutcomePaid
	case session.Status == stripe.CheckoutSessionStatusExpired:
		return entity.OutcomeExpired
	default:
		return entity.OutcomeOpen
	}
}

func convertError(err error, operation string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s: %s", usecase.ErrNotFound, operation, stripeErr.Msg)
	}

	return fmt.Errorf("%w: %s: %s", usecase.ErrUpstream, operation, err.Error())
}

func isRetryable(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return true
	}

	return stripeErr.HTTPStatusCode == http.StatusTooManyRequests ||
		stripeErr.HTTPStatusCode == http.StatusConflict ||
		stripeErr.HTTPStatusCode >= http.StatusInternalServerError
}
