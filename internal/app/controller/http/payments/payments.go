package payments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	httputils "github.com/avGenie/flexihire/internal/app/controller/http/utils"
	"github.com/avGenie/flexihire/internal/app/converter"
	"github.com/avGenie/flexihire/internal/app/entity"
	err_usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/usecase/gateway"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payments.go -destination=mock/payments.go -package=mock

const (
	SessionIDParam = "session_id"

	maxWebhookBodyLen = 65536
)

type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, sessionID string) (entity.Order, error)
	ApplySession(ctx context.Context, session entity.CheckoutSession) (entity.Order, error)
}

type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (entity.CheckoutSession, error)
}

type Payment struct {
	confirmer PaymentConfirmer
	parser    WebhookParser
}

func New(confirmer PaymentConfirmer, parser WebhookParser) Payment {
	return Payment{
		confirmer: confirmer,
		parser:    parser,
	}
}

// ConfirmPayment serves the checkout return URL. The session is looked up at
// the gateway, so the caller needs no token.
func (p *Payment) ConfirmPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get(SessionIDParam)
		if len(sessionID) == 0 {
			httputils.WriteError(w, fmt.Errorf("%w: empty %s", err_usecase.ErrValidation, SessionIDParam))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.PaymentTimeout)
		defer cancel()

		order, err := p.confirmer.ConfirmPayment(ctx, sessionID)
		if err != nil {
			zap.L().Error("error while confirming payment", zap.String("session_id", sessionID), zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

// Webhook receives signed gateway events. Events of other types are
// acknowledged and dropped.
func (p *Payment) Webhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyLen))
		if err != nil {
			httputils.WriteError(w, fmt.Errorf("%w: error while reading webhook body: %s", err_usecase.ErrValidation, err.Error()))
			return
		}
		defer r.Body.Close()

		session, err := p.parser.ParseWebhook(payload, r.Header.Get(gateway.SignatureHeader))
		if err != nil {
			if errors.Is(err, gateway.ErrEventIgnored) {
				zap.L().Debug("webhook event ignored", zap.Error(err))
				w.WriteHeader(http.StatusOK)
				return
			}

			zap.L().Error("error while parsing webhook", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.PaymentTimeout)
		defer cancel()

		order, err := p.confirmer.ApplySession(ctx, session)
		if err != nil {
			zap.L().Error("error while applying webhook session", zap.String("session_id", session.ID), zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		zap.L().Info("webhook session applied",
			zap.String("order_id", order.ID.String()),
			zap.String("status", string(order.Status)),
			zap.String("payment_status", string(order.PaymentStatus)),
		)

		w.WriteHeader(http.StatusOK)
	}
}
