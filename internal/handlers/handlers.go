package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/fieldbook/docs"
	opshandlers "github.com/GlebRadaev/fieldbook/internal/handlers/ops"
	ordershandlers "github.com/GlebRadaev/fieldbook/internal/handlers/orders"
	pricinghandlers "github.com/GlebRadaev/fieldbook/internal/handlers/pricing"
	"github.com/GlebRadaev/fieldbook/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type OrderHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetStoreOrders(w http.ResponseWriter, r *http.Request)
	GetUserOrders(w http.ResponseWriter, r *http.Request)
}

type PricingHandler interface {
	SetWeeklyPrice(w http.ResponseWriter, r *http.Request)
	SetSpecialPrice(w http.ResponseWriter, r *http.Request)
	GetWeekly(w http.ResponseWriter, r *http.Request)
	GetSpecial(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type OpsHandler interface {
	SweepExpired(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler   OrderHandler
	PricingHandler PricingHandler
	OpsHandler     OpsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		OrderHandler:   ordershandlers.New(s.OrderService, s.WebhookVerifier, s.Location),
		PricingHandler: pricinghandlers.New(s.PricingService),
		OpsHandler:     opshandlers.New(s.Sweeper),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/create-payment", h.OrderHandler.CreatePayment)
			r.Post("/webhook", h.OrderHandler.Webhook)
			r.Get("/store/{store_id}", h.OrderHandler.GetStoreOrders)
			r.Get("/user/{user_id}", h.OrderHandler.GetUserOrders)
			r.Get("/{order_id}", h.OrderHandler.GetOrder)
			r.Put("/{order_id}/status", h.OrderHandler.UpdateStatus)
		})
		r.Route("/field-pricings", func(r chi.Router) {
			r.Post("/", h.PricingHandler.SetWeeklyPrice)
			r.Post("/special", h.PricingHandler.SetSpecialPrice)
			r.Get("/special/{field_id}", h.PricingHandler.GetSpecial)
			r.Get("/{field_id}", h.PricingHandler.GetWeekly)
			r.Get("/{field_id}/resolve", h.PricingHandler.Resolve)
		})
		r.Post("/ops/sweep-expired", h.OpsHandler.SweepExpired)
	})

	return r
}
