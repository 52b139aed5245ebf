package service

import (
	"fmt"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/config"
	"github.com/GlebRadaev/fieldbook/internal/directory"
	"github.com/GlebRadaev/fieldbook/internal/gateway"
	"github.com/GlebRadaev/fieldbook/internal/handlers/orders"
	"github.com/GlebRadaev/fieldbook/internal/handlers/pricing"
	"github.com/GlebRadaev/fieldbook/internal/repo"
	orderservice "github.com/GlebRadaev/fieldbook/internal/service/orderservice"
	pricingservice "github.com/GlebRadaev/fieldbook/internal/service/pricingservice"
	"github.com/GlebRadaev/fieldbook/internal/sweeper"
	"github.com/GlebRadaev/fieldbook/pkg/clients"
)

type Services struct {
	OrderService    orders.Service
	PricingService  pricing.Service
	WebhookVerifier orders.WebhookVerifier
	Sweeper         *sweeper.Sweeper
	Location        *time.Location
}

func New(repo *repo.Repositories, cfg *config.Config, client clients.HTTPClientI) (*Services, error) {
	loc, err := time.LoadLocation(cfg.VenueTimeZone)
	if err != nil {
		return nil, fmt.Errorf("load venue time zone %q: %w", cfg.VenueTimeZone, err)
	}

	gw := gateway.New(gateway.Config{
		Address:     cfg.GatewayAddress,
		ClientID:    cfg.GatewayClientID,
		APIKey:      cfg.GatewayAPIKey,
		ChecksumKey: cfg.GatewayChecksumKey,
	}, client)
	dir := directory.New(cfg.DirectoryAddress, client)

	pricingService := pricingservice.New(repo.PricingRepo, repo.FieldRepo, cfg.SlotStep, loc)
	orderService := orderservice.New(repo.OrderRepo, repo.FieldRepo, gw, dir, pricingService, orderservice.Options{
		ReturnURL:    cfg.ReturnURL,
		CancelURL:    cfg.CancelURL,
		Location:     loc,
		Step:         cfg.SlotStep,
		VerifyPrices: cfg.VerifyItemPrices,
	})

	return &Services{
		OrderService:    orderService,
		PricingService:  pricingService,
		WebhookVerifier: gw,
		Sweeper:         sweeper.New(orderService, cfg.SweepInterval, cfg.SweepThreshold),
		Location:        loc,
	}, nil
}
