package repo

import (
	"github.com/GlebRadaev/fieldbook/internal/pg"
	fieldrepo "github.com/GlebRadaev/fieldbook/internal/repo/field-repo"
	orderrepo "github.com/GlebRadaev/fieldbook/internal/repo/order-repo"
	pricingrepo "github.com/GlebRadaev/fieldbook/internal/repo/pricing-repo"
	"github.com/GlebRadaev/fieldbook/internal/service/orderservice"
	"github.com/GlebRadaev/fieldbook/internal/service/pricingservice"
)

type Repositories struct {
	FieldRepo   pricingservice.FieldRepo
	PricingRepo pricingservice.Repo
	OrderRepo   orderservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	fieldRepo := fieldrepo.New(conn)
	pricingRepo := pricingrepo.New(conn, txManager)
	orderRepo := orderrepo.New(conn, txManager)

	return &Repositories{
		FieldRepo:   fieldRepo,
		PricingRepo: pricingRepo,
		OrderRepo:   orderRepo,
	}
}
