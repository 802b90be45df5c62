package gateway

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avGenie/flexihire/internal/app/entity"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const SignatureHeader = "Stripe-Signature"

var ErrEventIgnored = errors.New("webhook event type is not handled")

// ParseWebhook verifies the signature of a webhook payload and extracts the
// checkout session it carries.
// Without a configured secret every event is rejected.
func (s *Stripe) ParseWebhook(payload []byte, signature string) (entity.CheckoutSession, error) {
	if len(s.webhookSecret) == 0 {
		return entity.CheckoutSession{}, fmt.Errorf("%w: webhook secret is not configured", usecase.ErrUnauthorized)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("%w: webhook signature: %s", usecase.ErrUnauthorized, err.Error())
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded,
		stripe.EventTypeCheckoutSessionAsyncPaymentFailed,
		stripe.EventTypeCheckoutSessionExpired:
	default:
		return entity.CheckoutSession{}, fmt.Errorf("%w: %s", ErrEventIgnored, event.Type)
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("%w: webhook session: %s", usecase.ErrValidation, err.Error())
	}

	out := convertSession(&session)
	switch event.Type {
	case stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		out.Outcome = entity.OutcomePaid
	case stripe.EventTypeCheckoutSessionAsyncPaymentFailed, stripe.EventTypeCheckoutSessionExpired:
		out.Outcome = entity.OutcomeExpired
	}

	return out, nil
}
