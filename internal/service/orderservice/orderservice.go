package orderservice

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/directory"
	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/gateway"
	"github.com/GlebRadaev/fieldbook/internal/metrics"
	"github.com/GlebRadaev/fieldbook/internal/timegrid"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, order *domain.Order, details []domain.OrderDetail) error
	FindByRef(ctx context.Context, orderRef int64) (*domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, from []domain.OrderStatus, to domain.OrderStatus) (bool, error)
	FailExpired(ctx context.Context, before time.Time) (int64, error)
	FindPaidByStore(ctx context.Context, storeID string, filter domain.PaidOrderFilter) ([]domain.Order, error)
	FindPaidByUser(ctx context.Context, userID string) ([]domain.Order, error)
	FindDetails(ctx context.Context, orderIDs []int) ([]domain.OrderDetail, error)
}

type FieldRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Field, error)
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req gateway.CheckoutRequest) (*gateway.Checkout, error)
}

type Directory interface {
	Store(ctx context.Context, id string) *directory.Store
	User(ctx context.Context, id string) *directory.User
}

type PriceResolver interface {
	Resolve(ctx context.Context, fieldID int, date time.Time) ([]timegrid.PricedSlot, error)
}

var (
	ErrValidation           = errors.New("validation failed")
	ErrOrderNotFound        = errors.New("order not found")
	ErrFieldNotFound        = errors.New("field not found")
	ErrGateway              = errors.New("payment gateway failure")
	ErrOrderFinalized       = errors.New("order already finalized")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrInvalidStatus        = errors.New("invalid order status")
)

// forceSources lists, per target status, the states an operator may move an
// order out of.
var forceSources = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderPaid:   {domain.OrderPending, domain.OrderFailed},
	domain.OrderFailed: {domain.OrderPending},
}

type Options struct {
	ReturnURL    string
	CancelURL    string
	Location     *time.Location
	Step         time.Duration
	VerifyPrices bool
}

type Service struct {
	repo      Repo
	fields    FieldRepo
	gateway   Gateway
	directory Directory
	resolver  PriceResolver
	opts      Options
	now       func() time.Time
	lastRef   atomic.Int64
}

func New(repo Repo, fields FieldRepo, gw Gateway, dir Directory, resolver PriceResolver, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Step < time.Minute {
		opts.Step = timegrid.DefaultStep
	}
	return &Service{
		repo:      repo,
		fields:    fields,
		gateway:   gw,
		directory: dir,
		resolver:  resolver,
		opts:      opts,
		now:       time.Now,
	}
}

// CreateReservation persists a PENDING order with one detail per item and
// opens a checkout session for it. A gateway failure leaves the order
// PENDING for the expiry sweep.
func (s *Service) CreateReservation(ctx context.Context, req ReservationRequest) (*Reservation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	locs := make(map[int]*time.Location)
	for _, item := range req.Items {
		if _, ok := locs[item.FieldID]; ok {
			continue
		}
		field, err := s.fields.FindByID(ctx, item.FieldID)
		if err != nil {
			return nil, err
		}
		if field == nil {
			return nil, fmt.Errorf("%w: %d", ErrFieldNotFound, item.FieldID)
		}
		locs[item.FieldID] = field.Location(s.opts.Location)
	}

	if s.opts.VerifyPrices {
		if err := s.verifyPrices(ctx, req); err != nil {
			return nil, err
		}
	}

	now := s.now()
	order := &domain.Order{
		UserID:      req.UserID,
		StoreID:     req.StoreID,
		Status:      domain.OrderPending,
		Cost:        req.Amount,
		OrderRef:    s.nextRef(now),
		Description: req.Description,
		CreatedAt:   now,
	}
	details := make([]domain.OrderDetail, 0, len(req.Items))
	for _, item := range req.Items {
		loc := locs[item.FieldID]
		details = append(details, domain.OrderDetail{
			FieldID:   item.FieldID,
			StartTime: item.Start.On(req.Date, loc),
			EndTime:   item.End.On(req.Date, loc),
			Price:     item.Price,
		})
	}

	if err := s.repo.Create(ctx, order, details); err != nil {
		zap.L().Error("can't save reservation", zap.Int64("order_ref", order.OrderRef), zap.Error(err))
		return nil, err
	}
	metrics.OrdersCreated.Inc()

	lines := MergeLineItemsForCheckout(req.Items)
	items := make([]gateway.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, gateway.Item{Name: line.label(), Quantity: 1, Price: line.Price})
	}

	checkout, err := s.gateway.CreateCheckout(ctx, gateway.CheckoutRequest{
		OrderCode:   order.OrderRef,
		Amount:      req.Amount,
		Description: req.Description,
		Items:       items,
		ReturnURL:   s.opts.ReturnURL,
		CancelURL:   s.opts.CancelURL,
	})
	if err != nil {
		zap.L().Error("can't open checkout session", zap.Int64("order_ref", order.OrderRef), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	zap.L().Info("reservation created",
		zap.Int("order_id", order.ID),
		zap.Int64("order_ref", order.OrderRef),
		zap.Int("details", len(details)),
		zap.Int("line_items", len(items)),
	)
	return &Reservation{
		OrderRef:    order.OrderRef,
		Amount:      order.Cost,
		Description: order.Description,
		CheckoutURL: checkout.CheckoutURL,
		Order:       order,
	}, nil
}

// nextRef derives the gateway correlation key from the creation time. Refs
// are strictly increasing within the process.
func (s *Service) nextRef(now time.Time) int64 {
	ref := now.UnixMilli()
	for {
		last := s.lastRef.Load()
		next := max(ref, last+1)
		if s.lastRef.CompareAndSwap(last, next) {
			return next
		}
	}
}

// MergeLineItemsForCheckout coalesces items of one field whose clock ranges
// touch into a single line priced at their sum.
func MergeLineItemsForCheckout(items []Item) []Item {
	return timegrid.Coalesce(items,
		func(a, b Item) bool {
			if a.FieldID != b.FieldID {
				return a.FieldID < b.FieldID
			}
			return a.Start.Before(b.Start)
		},
		func(prev *Item, next Item) bool {
			if prev.FieldID != next.FieldID || prev.End != next.Start {
				return false
			}
			prev.End = next.End
			prev.Price += next.Price
			return true
		},
	)
}

func (s *Service) verifyPrices(ctx context.Context, req ReservationRequest) error {
	timelines := make(map[int][]timegrid.PricedSlot)
	for _, item := range req.Items {
		timeline, ok := timelines[item.FieldID]
		if !ok {
			var err error
			timeline, err = s.resolver.Resolve(ctx, item.FieldID, req.Date)
			if err != nil {
				return err
			}
			timelines[item.FieldID] = timeline
		}
		expected, ok := priceOver(timeline, item.Start, item.End, s.opts.Step)
		if !ok {
			return fmt.Errorf("%w: field %d has no price for %s-%s", ErrValidation, item.FieldID, item.Start, item.End)
		}
		if expected != item.Price {
			return fmt.Errorf("%w: price of field %d at %s-%s is %d, got %d", ErrValidation, item.FieldID, item.Start, item.End, expected, item.Price)
		}
	}
	return nil
}

// priceOver sums the timeline price of every step slot in [start, end).
func priceOver(timeline []timegrid.PricedSlot, start, end timegrid.Clock, step time.Duration) (int64, bool) {
	var total int64
	for _, slot := range timegrid.GenerateSlots(start, end, step) {
		found := false
		for _, r := range timeline {
			if r.Start.Minutes() <= slot.Start.Minutes() && slot.End.Minutes() <= r.End.Minutes() {
				total += r.Price
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return total, true
}

// HandleSettlement applies a gateway settlement code to a PENDING order.
// Orders already PAID or FAILED are left untouched.
func (s *Service) HandleSettlement(ctx context.Context, orderRef int64, code string) (*domain.Order, error) {
	order, err := s.repo.FindByRef(ctx, orderRef)
	if err != nil {
		return nil, err
	}
	if order == nil {
		zap.L().Warn("settlement for unknown order", zap.Int64("order_ref", orderRef))
		return nil, ErrOrderNotFound
	}
	if order.Status.Terminal() {
		zap.L().Info("settlement for finalized order ignored", zap.Int64("order_ref", orderRef), zap.String("status", string(order.Status)))
		return order, ErrOrderFinalized
	}

	to := domain.OrderFailed
	if code == gateway.SuccessCode {
		to = domain.OrderPaid
	}
	changed, err := s.repo.UpdateStatus(ctx, order.ID, []domain.OrderStatus{domain.OrderPending}, to)
	if err != nil {
		return nil, err
	}
	if !changed {
		zap.L().Info("order left pending before settlement", zap.Int64("order_ref", orderRef))
		return order, ErrOrderFinalized
	}

	metrics.OrdersSettled.WithLabelValues(string(to)).Inc()
	zap.L().Info("order settled", zap.Int64("order_ref", orderRef), zap.String("code", code), zap.String("status", string(to)))
	order.Status = to
	return order, nil
}

// ForceStatus is the operator override. Only PENDING->PAID, PENDING->FAILED
// and FAILED->PAID are accepted; setting the current status is a no-op.
func (s *Service) ForceStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*OrderView, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if order.Status != status {
		sources := forceSources[status]
		if !slices.Contains(sources, order.Status) {
			return nil, fmt.Errorf("%w: %s to %s", ErrTransitionNotAllowed, order.Status, status)
		}
		changed, err := s.repo.UpdateStatus(ctx, order.ID, sources, status)
		if err != nil {
			return nil, err
		}
		if !changed {
			return nil, fmt.Errorf("%w: order %d changed concurrently", ErrTransitionNotAllowed, orderID)
		}
		zap.L().Warn("order status forced", zap.Int("order_id", orderID), zap.String("from", string(order.Status)), zap.String("to", string(status)))
		order.Status = status
	}

	views, err := s.views(ctx, []domain.Order{*order})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int) (*OrderView, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	views, err := s.views(ctx, []domain.Order{*order})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// SweepExpired fails PENDING orders created more than threshold ago.
func (s *Service) SweepExpired(ctx context.Context, threshold time.Duration) (int64, error) {
	cutoff := s.now().Add(-threshold)
	n, err := s.repo.FailExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.OrdersExpired.Add(float64(n))
		zap.L().Info("expired pending orders", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	}
	return n, nil
}

func (s *Service) ListPaidByStore(ctx context.Context, storeID string, filter domain.PaidOrderFilter) ([]OrderView, error) {
	orders, err := s.repo.FindPaidByStore(ctx, storeID, filter)
	if err != nil {
		zap.L().Error("failed to list store orders", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	return s.views(ctx, orders)
}

func (s *Service) ListPaidByUser(ctx context.Context, userID string) ([]OrderView, error) {
	orders, err := s.repo.FindPaidByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list user orders", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return s.views(ctx, orders)
}
