package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "mon"
	Tuesday   DayOfWeek = "tue"
	Wednesday DayOfWeek = "wed"
	Thursday  DayOfWeek = "thu"
	Friday    DayOfWeek = "fri"
	Saturday  DayOfWeek = "sat"
	Sunday    DayOfWeek = "sun"
)

// Week lists the days in display order.
var Week = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdays = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

func DayOf(t time.Time) DayOfWeek {
	return weekdays[t.Weekday()]
}

func ParseDayOfWeek(s string) (DayOfWeek, error) {
	d := DayOfWeek(strings.ToLower(strings.TrimSpace(s)))
	for _, w := range Week {
		if w == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day of week %q", s)
}

type OrderStatus string

const (
	OrderPending OrderStatus = "PENDING"
	OrderPaid    OrderStatus = "PAID"
	OrderFailed  OrderStatus = "FAILED"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderPaid || s == OrderFailed
}

func (s OrderStatus) Valid() bool {
	return s == OrderPending || s.Terminal()
}

type Field struct {
	ID           int    `db:"id"`
	StoreID      string `db:"store_id"`
	SportID      string `db:"sport_id"`
	DefaultPrice int64  `db:"default_price"`
	Active       bool   `db:"active"`
	TimeZone     string `db:"time_zone"`
}

var locations sync.Map

// Location resolves the venue time zone of the field. An empty or unknown
// zone name yields fallback.
func (f Field) Location(fallback *time.Location) *time.Location {
	if f.TimeZone == "" {
		return fallback
	}
	if loc, ok := locations.Load(f.TimeZone); ok {
		return loc.(*time.Location)
	}
	loc, err := time.LoadLocation(f.TimeZone)
	if err != nil {
		return fallback
	}
	locations.Store(f.TimeZone, loc)
	return loc
}

// WeeklyPrice is active while RetiredAt is nil. StartMinute and EndMinute
// count minutes from local midnight.
type WeeklyPrice struct {
	ID          int        `db:"id"`
	FieldID     int        `db:"field_id"`
	DayOfWeek   DayOfWeek  `db:"day_of_week"`
	StartMinute int        `db:"start_minute"`
	EndMinute   int        `db:"end_minute"`
	Price       int64      `db:"price"`
	CreatedAt   time.Time  `db:"created_at"`
	RetiredAt   *time.Time `db:"retired_at"`
}

type SpecialPrice struct {
	ID        int        `db:"id"`
	FieldID   int        `db:"field_id"`
	StartAt   time.Time  `db:"start_at"`
	EndAt     time.Time  `db:"end_at"`
	Price     int64      `db:"price"`
	CreatedAt time.Time  `db:"created_at"`
	RetiredAt *time.Time `db:"retired_at"`
}

type Order struct {
	ID          int         `db:"id"`
	UserID      string      `db:"user_id"`
	StoreID     string      `db:"store_id"`
	Status      OrderStatus `db:"status"`
	Cost        int64       `db:"cost"`
	OrderRef    int64       `db:"order_ref"`
	Description string      `db:"description"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

type OrderDetail struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	FieldID   int       `db:"field_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Price     int64     `db:"price"`
}

// PaidOrderFilter narrows store projections. Zero values disable a bound.
type PaidOrderFilter struct {
	CreatedFrom time.Time
	CreatedTo   time.Time
	PlayFrom    time.Time
	PlayTo      time.Time
}
