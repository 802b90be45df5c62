package token

import (
	"context"
	"net/http"

	"github.com/avGenie/flexihire/internal/app/entity"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/converter"
	"go.uber.org/zap"
)

// TokenParserMiddleware puts the caller parsed from the bearer token into the
// request context. Requests without a valid token pass through with an
// unauthorized status code in the context.
func TokenParserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header[usecase.AuthHeader]
		userCtx := processAuthActor(authHeader)

		ctx := context.WithValue(r.Context(), entity.UserIDCtxKey{}, userCtx)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func processAuthActor(authHeader []string) entity.UserIDCtx {
	if len(authHeader) == 0 {
		zap.L().Debug("authorization header is empty")

		return entity.CreateUserIDCtx("", "", http.StatusUnauthorized)
	}

	actor, err := usecase.GetActorFromAuthHeader(authHeader[0])
	if err != nil {
		zap.L().Info("error while parsing auth header", zap.Error(err))

		return entity.CreateUserIDCtx("", "", http.StatusUnauthorized)
	}

	if !actor.ID.Valid() || !actor.Role.Valid() {
		zap.L().Error("empty user id or unknown role in authorization header")

		return entity.CreateUserIDCtx("", "", http.StatusBadRequest)
	}

	return entity.CreateUserIDCtx(actor.ID, actor.Role, http.StatusOK)
}
