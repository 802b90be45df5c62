package http

import (
	"net/http"

	"github.com/avGenie/flexihire/internal/app/controller/http/auth"
	auth_middleware "github.com/avGenie/flexihire/internal/app/controller/http/middleware/auth"
	"github.com/avGenie/flexihire/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/flexihire/internal/app/controller/http/middleware/token"
	"github.com/avGenie/flexihire/internal/app/controller/http/listings"
	"github.com/avGenie/flexihire/internal/app/controller/http/orders"
	"github.com/avGenie/flexihire/internal/app/controller/http/payments"
	httputils "github.com/avGenie/flexihire/internal/app/controller/http/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Auth     auth.AuthUser
	Listings listings.Listing
	Orders   orders.Order
	Payments payments.Payment
}

func CreateRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.LoggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(token.TokenParserMiddleware)

	r.Get("/health", health)

	r.Post("/api/user/register", h.Auth.CreateUser())
	r.Post("/api/user/login", h.Auth.AuthenticateUser())

	r.Get("/api/listings", h.Listings.ListListings())
	r.Get("/api/listings/{id}", h.Listings.GetListing())

	r.Get("/api/payments/confirm", h.Payments.ConfirmPayment())
	r.Post("/api/payments/webhook", h.Payments.Webhook())

	r.Group(func(r chi.Router) {
		r.Use(auth_middleware.AuthMiddleware)

		r.Get("/api/user/profile", h.Auth.GetProfile())
		r.Put("/api/user/profile", h.Auth.UpdateProfile())

		r.Post("/api/listings", h.Listings.CreateListing())
		r.Put("/api/listings/{id}", h.Listings.UpdateListing())
		r.Delete("/api/listings/{id}", h.Listings.DeleteListing())
		r.Post("/api/listings/{id}/applications", h.Orders.ApplyToJob())

		r.Post("/api/orders", h.Orders.CreateOrder())
		r.Get("/api/orders", h.Orders.GetUserOrders())
		r.Get("/api/orders/{id}", h.Orders.GetOrder())
		r.Delete("/api/orders/{id}", h.Orders.DeleteOrder())
		r.Post("/api/orders/{id}/checkout", h.Orders.StartCheckout())
		r.Patch("/api/orders/{id}/status", h.Orders.ChangeStatus())
		r.Post("/api/orders/{id}/cancel", h.Orders.CancelOrder())
		r.Get("/api/orders/{id}/history", h.Orders.GetHistory())
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	httputils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
