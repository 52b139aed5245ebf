package orderservice

import (
	"context"
	"sync"

	"github.com/GlebRadaev/fieldbook/internal/directory"
	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/timegrid"
	"golang.org/x/sync/errgroup"
)

const lookupLimit = 8

// MergeDetailRanges folds details of the same field that touch and share a
// price into one range.
func MergeDetailRanges(details []domain.OrderDetail) []DetailRange {
	ranges := make([]timegrid.PricedRange, 0, len(details))
	for _, d := range details {
		ranges = append(ranges, timegrid.PricedRange{Key: d.FieldID, Start: d.StartTime, End: d.EndTime, Price: d.Price})
	}
	merged := timegrid.MergeRanges(ranges)
	if merged == nil {
		return nil
	}
	out := make([]DetailRange, 0, len(merged))
	for _, r := range merged {
		out = append(out, DetailRange{FieldID: r.Key, StartTime: r.Start, EndTime: r.End, Price: r.Price})
	}
	return out
}

// views expands orders with merged details and their directory entries.
func (s *Service) views(ctx context.Context, orders []domain.Order) ([]OrderView, error) {
	if len(orders) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	details, err := s.repo.FindDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[int][]domain.OrderDetail, len(orders))
	for _, d := range details {
		byOrder[d.OrderID] = append(byOrder[d.OrderID], d)
	}

	stores, users := s.lookup(ctx, orders)

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderView{
			Order:   o,
			Details: MergeDetailRanges(byOrder[o.ID]),
			Store:   stores[o.StoreID],
			User:    users[o.UserID],
		})
	}
	return views, nil
}

func (s *Service) lookup(ctx context.Context, orders []domain.Order) (map[string]*directory.Store, map[string]*directory.User) {
	stores := make(map[string]*directory.Store)
	users := make(map[string]*directory.User)
	if s.directory == nil {
		return stores, users
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupLimit)

	seenStores := make(map[string]bool)
	seenUsers := make(map[string]bool)
	for _, o := range orders {
		if storeID := o.StoreID; storeID != "" && !seenStores[storeID] {
			seenStores[storeID] = true
			g.Go(func() error {
				store := s.directory.Store(gctx, storeID)
				mu.Lock()
				stores[storeID] = store
				mu.Unlock()
				return nil
			})
		}
		if userID := o.UserID; userID != "" && !seenUsers[userID] {
			seenUsers[userID] = true
			g.Go(func() error {
				user := s.directory.User(gctx, userID)
				mu.Lock()
				users[userID] = user
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()
	return stores, users
}
