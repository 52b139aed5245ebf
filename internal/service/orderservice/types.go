package orderservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/directory"
	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/timegrid"
)

// Item is one booked clock range on a field at the caller's price.
type Item struct {
	FieldID int
	Name    string
	Start   timegrid.Clock
	End     timegrid.Clock
	Price   int64
}

func (i Item) label() string {
	name := i.Name
	if name == "" {
		name = fmt.Sprintf("Field %d", i.FieldID)
	}
	return fmt.Sprintf("%s %s-%s", name, i.Start, i.End)
}

type ReservationRequest struct {
	UserID      string
	StoreID     string
	Items       []Item
	Amount      int64
	Description string
	// Date is the play day; only its calendar date is used.
	Date time.Time
}

func (r ReservationRequest) validate() error {
	var missing []string
	if r.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(r.Description) == "" {
		missing = append(missing, "description")
	}
	if len(r.Items) == 0 {
		missing = append(missing, "items")
	}
	if r.StoreID == "" {
		missing = append(missing, "store_id")
	}
	if r.UserID == "" {
		missing = append(missing, "user_id")
	}
	if r.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	for _, item := range r.Items {
		if !item.Start.Before(item.End) {
			return fmt.Errorf("%w: item %s-%s is empty", ErrValidation, item.Start, item.End)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item price is negative", ErrValidation)
		}
	}
	return nil
}

type Reservation struct {
	OrderRef    int64
	Amount      int64
	Description string
	CheckoutURL string
	Order       *domain.Order
}

// DetailRange is a merged run of order details on one field.
type DetailRange struct {
	FieldID   int
	StartTime time.Time
	EndTime   time.Time
	Price     int64
}

type OrderView struct {
	domain.Order
	Details []DetailRange
	Store   *directory.Store
	User    *directory.User
}
