// Package timegrid cuts time ranges into fixed-width slots and folds
// neighbouring slots that carry the same price back into ranges.
package timegrid

import (
	"sort"
	"time"
)

const DefaultStep = 30 * time.Minute

type Slot struct {
	Start Clock
	End   Clock
}

type PricedSlot struct {
	Start Clock
	End   Clock
	Price int64
}

type Range struct {
	Start time.Time
	End   time.Time
}

// PricedRange is an absolute interval. Ranges with different Key never merge.
type PricedRange struct {
	Key   int
	Start time.Time
	End   time.Time
	Price int64
}

// GenerateSlots covers [start, end) with step-wide slots. When end is not
// step-aligned the last slot is clamped to end.
func GenerateSlots(start, end Clock, step time.Duration) []Slot {
	if step < time.Minute {
		step = DefaultStep
	}
	var slots []Slot
	cur := start.Minutes()
	stop := end.Minutes()
	width := int(step / time.Minute)
	for cur < stop {
		next := min(cur+width, stop)
		slots = append(slots, Slot{Start: FromMinutes(cur), End: FromMinutes(next)})
		cur = next
	}
	return slots
}

// GenerateRanges is GenerateSlots for absolute instants.
func GenerateRanges(start, end time.Time, step time.Duration) []Range {
	if step < time.Minute {
		step = DefaultStep
	}
	var ranges []Range
	for cur := start; cur.Before(end); {
		next := cur.Add(step)
		if next.After(end) {
			next = end
		}
		ranges = append(ranges, Range{Start: cur, End: next})
		cur = next
	}
	return ranges
}

// MergeAdjacent sorts slots by start and joins a slot into its predecessor
// when they touch and share a price.
func MergeAdjacent(slots []PricedSlot) []PricedSlot {
	return Coalesce(slots,
		func(a, b PricedSlot) bool { return a.Start.Before(b.Start) },
		func(prev *PricedSlot, next PricedSlot) bool {
			if prev.End != next.Start || prev.Price != next.Price {
				return false
			}
			prev.End = next.End
			return true
		},
	)
}

// MergeRanges is MergeAdjacent over absolute ranges, grouped by Key.
func MergeRanges(ranges []PricedRange) []PricedRange {
	return Coalesce(ranges,
		func(a, b PricedRange) bool {
			if a.Key != b.Key {
				return a.Key < b.Key
			}
			return a.Start.Before(b.Start)
		},
		func(prev *PricedRange, next PricedRange) bool {
			if prev.Key != next.Key || !prev.End.Equal(next.Start) || prev.Price != next.Price {
				return false
			}
			prev.End = next.End
			return true
		},
	)
}

// Coalesce stable-sorts a copy of items with less, then walks it folding
// each item into the last emitted one while join returns true. join may
// mutate prev only when it returns true.
func Coalesce[T any](items []T, less func(a, b T) bool, join func(prev *T, next T) bool) []T {
	if len(items) == 0 {
		return nil
	}
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	out := []T{sorted[0]}
	for _, item := range sorted[1:] {
		if join(&out[len(out)-1], item) {
			continue
		}
		out = append(out, item)
	}
	return out
}
