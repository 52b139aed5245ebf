package pricingservice

//go:generate mockgen -source=pricingservice.go -destination=mock_pricingservice.go -package=pricingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/metrics"
	"github.com/GlebRadaev/fieldbook/internal/timegrid"
	"go.uber.org/zap"
)

type Repo interface {
	ReplaceWeekly(ctx context.Context, prices []domain.WeeklyPrice) error
	ListActiveWeekly(ctx context.Context, fieldID int, day domain.DayOfWeek) ([]domain.WeeklyPrice, error)
	ListActiveWeeklyByField(ctx context.Context, fieldID int) ([]domain.WeeklyPrice, error)
	ReplaceSpecial(ctx context.Context, prices []domain.SpecialPrice) error
	ListActiveSpecial(ctx context.Context, fieldID int) ([]domain.SpecialPrice, error)
	ListActiveSpecialBetween(ctx context.Context, fieldID int, from, to time.Time) ([]domain.SpecialPrice, error)
}

type FieldRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Field, error)
}

var (
	ErrFieldNotFound = errors.New("field not found")
	ErrInvalidRange  = errors.New("invalid price range")
)

type Service struct {
	repo     Repo
	fields   FieldRepo
	step     time.Duration
	location *time.Location
}

// New builds the service. loc is the venue zone for fields without their own.
func New(repo Repo, fields FieldRepo, step time.Duration, loc *time.Location) *Service {
	if step < time.Minute {
		step = timegrid.DefaultStep
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:     repo,
		fields:   fields,
		step:     step,
		location: loc,
	}
}

// DaySchedule is the merged weekly price timeline of one day.
type DaySchedule struct {
	Day    domain.DayOfWeek
	Prices []timegrid.PricedSlot
}

// SpecialRange is a merged run of special prices in venue local time.
type SpecialRange struct {
	Start time.Time
	End   time.Time
	Price int64
}

// SetWeeklyPrice replaces the active weekly price of every step slot in
// [start, end) on each of days.
func (s *Service) SetWeeklyPrice(ctx context.Context, fieldID int, days []domain.DayOfWeek, start, end timegrid.Clock, price int64) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: no days given", ErrInvalidRange)
	}
	if err := s.checkRange(start, end, price); err != nil {
		return err
	}
	if _, err := s.field(ctx, fieldID); err != nil {
		return err
	}

	slots := timegrid.GenerateSlots(start, end, s.step)
	prices := make([]domain.WeeklyPrice, 0, len(days)*len(slots))
	for _, day := range dedupDays(days) {
		for _, slot := range slots {
			prices = append(prices, domain.WeeklyPrice{
				FieldID:     fieldID,
				DayOfWeek:   day,
				StartMinute: slot.Start.Minutes(),
				EndMinute:   slot.End.Minutes(),
				Price:       price,
			})
		}
	}

	if err := s.repo.ReplaceWeekly(ctx, prices); err != nil {
		zap.L().Error("failed to replace weekly prices", zap.Int("field_id", fieldID), zap.Error(err))
		return err
	}
	metrics.PricesReplaced.WithLabelValues("weekly").Add(float64(len(prices)))
	zap.L().Info("weekly price set",
		zap.Int("field_id", fieldID),
		zap.Int("slots", len(prices)),
		zap.String("start", start.String()),
		zap.String("end", end.String()),
		zap.Int64("price", price),
	)
	return nil
}

// SetSpecialPrice replaces the active special price of every step slot in
// [start, end). start and end are read as wall-clock times at the venue.
func (s *Service) SetSpecialPrice(ctx context.Context, fieldID int, start, end time.Time, price int64) error {
	field, err := s.field(ctx, fieldID)
	if err != nil {
		return err
	}
	loc := field.Location(s.location)
	start, end = wallClock(start, loc), wallClock(end, loc)

	if !start.Before(end) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}
	if price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidRange)
	}
	if !timegrid.ClockOf(start, loc).Aligned(s.step) || !timegrid.ClockOf(end, loc).Aligned(s.step) {
		return fmt.Errorf("%w: times must align to %s", ErrInvalidRange, s.step)
	}

	ranges := timegrid.GenerateRanges(start, end, s.step)
	prices := make([]domain.SpecialPrice, 0, len(ranges))
	for _, r := range ranges {
		prices = append(prices, domain.SpecialPrice{
			FieldID: fieldID,
			StartAt: r.Start,
			EndAt:   r.End,
			Price:   price,
		})
	}

	if err := s.repo.ReplaceSpecial(ctx, prices); err != nil {
		zap.L().Error("failed to replace special prices", zap.Int("field_id", fieldID), zap.Error(err))
		return err
	}
	metrics.PricesReplaced.WithLabelValues("special").Add(float64(len(prices)))
	zap.L().Info("special price set",
		zap.Int("field_id", fieldID),
		zap.Int("slots", len(prices)),
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int64("price", price),
	)
	return nil
}

func (s *Service) ListActiveWeekly(ctx context.Context, fieldID int, day domain.DayOfWeek) ([]domain.WeeklyPrice, error) {
	return s.repo.ListActiveWeekly(ctx, fieldID, day)
}

func (s *Service) ListActiveSpecial(ctx context.Context, fieldID int) ([]domain.SpecialPrice, error) {
	return s.repo.ListActiveSpecial(ctx, fieldID)
}

// WeeklySchedule returns the merged active weekly prices for every day that
// has any, in week order.
func (s *Service) WeeklySchedule(ctx context.Context, fieldID int) ([]DaySchedule, error) {
	if _, err := s.field(ctx, fieldID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListActiveWeeklyByField(ctx, fieldID)
	if err != nil {
		zap.L().Error("failed to list weekly prices", zap.Int("field_id", fieldID), zap.Error(err))
		return nil, err
	}

	byDay := make(map[domain.DayOfWeek][]timegrid.PricedSlot)
	for _, row := range rows {
		byDay[row.DayOfWeek] = append(byDay[row.DayOfWeek], weeklySlot(row))
	}

	var schedule []DaySchedule
	for _, day := range domain.Week {
		if slots, ok := byDay[day]; ok {
			schedule = append(schedule, DaySchedule{Day: day, Prices: timegrid.MergeAdjacent(slots)})
		}
	}
	return schedule, nil
}

// SpecialSchedule returns the merged active special prices in venue time.
func (s *Service) SpecialSchedule(ctx context.Context, fieldID int) ([]SpecialRange, error) {
	field, err := s.field(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListActiveSpecial(ctx, fieldID)
	if err != nil {
		zap.L().Error("failed to list special prices", zap.Int("field_id", fieldID), zap.Error(err))
		return nil, err
	}

	loc := field.Location(s.location)
	ranges := make([]timegrid.PricedRange, 0, len(rows))
	for _, row := range rows {
		ranges = append(ranges, timegrid.PricedRange{Key: fieldID, Start: row.StartAt.In(loc), End: row.EndAt.In(loc), Price: row.Price})
	}

	var out []SpecialRange
	for _, r := range timegrid.MergeRanges(ranges) {
		out = append(out, SpecialRange{Start: r.Start, End: r.End, Price: r.Price})
	}
	return out, nil
}

// Resolve returns the price timeline of the field on the calendar day of
// date: the weekly prices of that weekday with same-day specials laid over
// them, merged. A nil result means no pricing is configured for the day.
func (s *Service) Resolve(ctx context.Context, fieldID int, date time.Time) ([]timegrid.PricedSlot, error) {
	field, err := s.field(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	loc := field.Location(s.location)
	dayStart := timegrid.StartOfDay(date, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	weekly, err := s.repo.ListActiveWeekly(ctx, fieldID, domain.DayOf(dayStart))
	if err != nil {
		zap.L().Error("failed to load weekly prices", zap.Int("field_id", fieldID), zap.Error(err))
		return nil, err
	}
	specials, err := s.repo.ListActiveSpecialBetween(ctx, fieldID, dayStart, dayEnd)
	if err != nil {
		zap.L().Error("failed to load special prices", zap.Int("field_id", fieldID), zap.Error(err))
		return nil, err
	}

	slots := make([]timegrid.PricedSlot, 0, len(weekly)+len(specials))
	for _, row := range weekly {
		slots = append(slots, weeklySlot(row))
	}
	for _, sp := range specials {
		slots = overlay(slots, timegrid.PricedSlot{
			Start: timegrid.ClockOnDay(dayStart, sp.StartAt, loc),
			End:   timegrid.ClockOnDay(dayStart, sp.EndAt, loc),
			Price: sp.Price,
		})
	}

	return timegrid.MergeAdjacent(slots), nil
}

func (s *Service) field(ctx context.Context, fieldID int) (*domain.Field, error) {
	field, err := s.fields.FindByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, ErrFieldNotFound
	}
	return field, nil
}

func (s *Service) checkRange(start, end timegrid.Clock, price int64) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}
	if !start.Aligned(s.step) || !end.Aligned(s.step) {
		return fmt.Errorf("%w: times must align to %s", ErrInvalidRange, s.step)
	}
	if price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidRange)
	}
	return nil
}

// overlay replaces the price of the slot with exactly sp's bounds, or adds sp.
func overlay(slots []timegrid.PricedSlot, sp timegrid.PricedSlot) []timegrid.PricedSlot {
	for i := range slots {
		if slots[i].Start == sp.Start && slots[i].End == sp.End {
			slots[i].Price = sp.Price
			return slots
		}
	}
	return append(slots, sp)
}

func weeklySlot(row domain.WeeklyPrice) timegrid.PricedSlot {
	return timegrid.PricedSlot{
		Start: timegrid.FromMinutes(row.StartMinute),
		End:   timegrid.FromMinutes(row.EndMinute),
		Price: row.Price,
	}
}

func wallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

func dedupDays(days []domain.DayOfWeek) []domain.DayOfWeek {
	seen := make(map[domain.DayOfWeek]bool, len(days))
	out := make([]domain.DayOfWeek, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
