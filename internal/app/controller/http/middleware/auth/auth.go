package auth

import (
	"net/http"

	httputils "github.com/avGenie/flexihire/internal/app/controller/http/utils"
	"go.uber.org/zap"
)

// AuthMiddleware rejects requests that carry no valid bearer token. It runs
// after the token parser.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := httputils.GetActorFromContext(r)
		if err != nil {
			zap.L().Info("unauthorized request", zap.String("uri", r.RequestURI), zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
