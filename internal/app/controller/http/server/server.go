package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avGenie/flexihire/internal/app/config"
	"github.com/avGenie/flexihire/internal/app/controller/http/auth"
	"github.com/avGenie/flexihire/internal/app/controller/http/listings"
	"github.com/avGenie/flexihire/internal/app/controller/http/orders"
	"github.com/avGenie/flexihire/internal/app/controller/http/payments"
	router "github.com/avGenie/flexihire/internal/app/controller/http/router"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/model"
	auth_usecase "github.com/avGenie/flexihire/internal/app/usecase/auth"
	"github.com/avGenie/flexihire/internal/app/usecase/gateway"
	"github.com/avGenie/flexihire/internal/app/usecase/listing"
	"github.com/avGenie/flexihire/internal/app/usecase/order"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type HTTPServer struct {
	server *http.Server

	config config.Config

	reconciler *order.Reconciler
}

func New(config config.Config, storage storage.Storage, gateway *gateway.Stripe, publisher order.EventPublisher) *HTTPServer {
	orderService := order.NewService(storage, gateway, publisher, config)

	mux := router.CreateRouter(router.Handlers{
		Auth:     auth.New(auth_usecase.NewService(storage)),
		Listings: listings.New(listing.NewService(storage)),
		Orders:   orders.New(orderService),
		Payments: payments.New(orderService, gateway),
	})

	server := &http.Server{
		Addr:              config.NetAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &HTTPServer{
		server:     server,
		config:     config,
		reconciler: order.CreateReconciler(storage, orderService, config),
	}
}

// StartHTTPServer blocks until SIGTERM or interrupt, then drains requests and
// stops the reconciler.
func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go s.reconciler.Start()

	go func() {
		zap.L().Info("starting HTTP server", zap.String("address", s.config.NetAddr))

		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err := s.server.Shutdown(shutdownCtx)
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}

	s.reconciler.Stop()
}
