package httputils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/usecase/lifecycle"
	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second
	// PaymentTimeout bounds requests that wait for the payment gateway.
	PaymentTimeout = 15 * time.Second

	internalErrorMessage = "internal server error"
)

func GetActorFromContext(r *http.Request) (entity.Actor, error) {
	userIDCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)
	if !ok {
		return entity.Actor{}, fmt.Errorf("%w: user id couldn't obtain from context", usecase.ErrUnauthorized)
	}

	if userIDCtx.StatusCode != http.StatusOK {
		return entity.Actor{}, fmt.Errorf("%w: auth credentials are invalid", usecase.ErrUnauthorized)
	}

	if !userIDCtx.UserID.Valid() {
		return entity.Actor{}, fmt.Errorf("%w: invalid user id with status ok", usecase.ErrUnauthorized)
	}

	return userIDCtx.Actor(), nil
}

func DecodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("%w: error while decoding request body: %s", usecase.ErrValidation, err.Error())
	}

	return nil
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

// WriteError answers with the status and stable reason code of the error.
func WriteError(w http.ResponseWriter, err error) {
	statusCode, reason := ConvertError(err)

	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		zap.L().Error("internal error while processing request", zap.Error(err))
		message = internalErrorMessage
	}

	WriteJSON(w, statusCode, model.ErrorResponse{
		Reason:  reason,
		Message: message,
	})
}

func ConvertError(err error) (int, model.ErrorReason) {
	switch {
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return http.StatusConflict, model.ReasonInvalidTransition
	case errors.Is(err, usecase.ErrValidation):
		return http.StatusBadRequest, model.ReasonValidation
	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrTokenNotValid),
		errors.Is(err, usecase.ErrTokenExpired):
		return http.StatusUnauthorized, model.ReasonUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden, model.ReasonForbidden
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, model.ReasonNotFound
	case errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict, model.ReasonConflict
	case errors.Is(err, usecase.ErrUpstream):
		return http.StatusBadGateway, model.ReasonUpstream
	default:
		return http.StatusInternalServerError, model.ReasonStorage
	}
}
