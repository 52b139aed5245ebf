package timegrid

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in        string
		want      Clock
		expectErr bool
	}{
		{in: "08:00", want: Clock{Hour: 8}},
		{in: "23:30", want: Clock{Hour: 23, Minute: 30}},
		{in: "7:05", want: Clock{Hour: 7, Minute: 5}},
		{in: "24:00", expectErr: true},
		{in: "08:60", expectErr: true},
		{in: "noon", expectErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidClock)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "08:05", Clock{Hour: 8, Minute: 5}.String())
	assert.Equal(t, "00:00", Clock{}.String())
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "two hours in half-hour steps",
			start: "08:00",
			end:   "10:00",
			want:  []string{"08:00-08:30", "08:30-09:00", "09:00-09:30", "09:30-10:00"},
		},
		{
			name:  "empty when start equals end",
			start: "08:00",
			end:   "08:00",
		},
		{
			name:  "empty when start after end",
			start: "10:00",
			end:   "08:00",
		},
		{
			name:  "unaligned end is clamped",
			start: "08:00",
			end:   "09:10",
			want:  []string{"08:00-08:30", "08:30-09:00", "09:00-09:10"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(clock(t, tt.start), clock(t, tt.end), 30*time.Minute)
			var got []string
			for _, s := range slots {
				got = append(got, s.Start.String()+"-"+s.End.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlotsContiguous(t *testing.T) {
	start, end := clock(t, "06:00"), clock(t, "22:00")
	slots := GenerateSlots(start, end, 0)

	require.NotEmpty(t, slots)
	assert.Equal(t, start, slots[0].Start)
	assert.Equal(t, end, slots[len(slots)-1].End)
	for i := 0; i+1 < len(slots); i++ {
		assert.Equal(t, slots[i].End, slots[i+1].Start)
	}
}

func TestGenerateRanges(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 5, 6, 23, 0, 0, 0, loc)
	end := time.Date(2024, 5, 7, 0, 30, 0, 0, loc)

	ranges := GenerateRanges(start, end, 30*time.Minute)

	require.Len(t, ranges, 3)
	assert.True(t, ranges[0].Start.Equal(start))
	assert.True(t, ranges[2].End.Equal(end))
	assert.True(t, ranges[1].End.Equal(ranges[2].Start))
}

func TestMergeAdjacent(t *testing.T) {
	at := func(s string) Clock { return clock(t, s) }
	tests := []struct {
		name  string
		slots []PricedSlot
		want  []PricedSlot
	}{
		{
			name: "contiguous equal prices collapse",
			slots: []PricedSlot{
				{Start: at("09:00"), End: at("09:30"), Price: 100000},
				{Start: at("08:00"), End: at("08:30"), Price: 100000},
				{Start: at("09:30"), End: at("10:00"), Price: 100000},
				{Start: at("08:30"), End: at("09:00"), Price: 100000},
			},
			want: []PricedSlot{{Start: at("08:00"), End: at("10:00"), Price: 100000}},
		},
		{
			name: "price change splits",
			slots: []PricedSlot{
				{Start: at("08:00"), End: at("08:30"), Price: 150},
				{Start: at("08:30"), End: at("09:00"), Price: 100},
				{Start: at("09:00"), End: at("09:30"), Price: 100},
			},
			want: []PricedSlot{
				{Start: at("08:00"), End: at("08:30"), Price: 150},
				{Start: at("08:30"), End: at("09:30"), Price: 100},
			},
		},
		{
			name: "gap splits",
			slots: []PricedSlot{
				{Start: at("08:00"), End: at("08:30"), Price: 100},
				{Start: at("09:00"), End: at("09:30"), Price: 100},
			},
			want: []PricedSlot{
				{Start: at("08:00"), End: at("08:30"), Price: 100},
				{Start: at("09:00"), End: at("09:30"), Price: 100},
			},
		},
		{
			name: "empty input",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeAdjacent(tt.slots)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, MergeAdjacent(got))
		})
	}
}

func TestMergeAdjacentDoesNotMutateInput(t *testing.T) {
	in := []PricedSlot{
		{Start: Clock{Hour: 9}, End: Clock{Hour: 10}, Price: 1},
		{Start: Clock{Hour: 8}, End: Clock{Hour: 9}, Price: 1},
	}
	MergeAdjacent(in)
	assert.Equal(t, 9, in[0].Start.Hour)
	assert.Equal(t, 10, in[0].End.Hour)
}

func TestMergeRanges(t *testing.T) {
	base := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	half := 30 * time.Minute
	r := func(key int, from, to time.Duration, price int64) PricedRange {
		return PricedRange{Key: key, Start: base.Add(from), End: base.Add(to), Price: price}
	}

	t.Run("three contiguous rows become one", func(t *testing.T) {
		got := MergeRanges([]PricedRange{r(1, 0, half, 50), r(1, half, 2*half, 50), r(1, 2*half, 3*half, 50)})
		assert.Equal(t, []PricedRange{r(1, 0, 3*half, 50)}, got)
	})

	t.Run("a gap yields two ranges", func(t *testing.T) {
		got := MergeRanges([]PricedRange{r(1, 0, half, 50), r(1, half, 2*half, 50), r(1, 3*half, 4*half, 50)})
		assert.Equal(t, []PricedRange{r(1, 0, 2*half, 50), r(1, 3*half, 4*half, 50)}, got)
	})

	t.Run("different keys never merge", func(t *testing.T) {
		got := MergeRanges([]PricedRange{r(2, half, 2*half, 50), r(1, 0, half, 50)})
		assert.Equal(t, []PricedRange{r(1, 0, half, 50), r(2, half, 2*half, 50)}, got)
	})
}

func TestClockOn(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	date := time.Date(2024, 5, 6, 0, 0, 0, 0, loc)

	got := Clock{Hour: 8, Minute: 30}.On(date, loc)

	assert.Equal(t, time.Date(2024, 5, 6, 1, 30, 0, 0, time.UTC), got.UTC())
	assert.Equal(t, Clock{Hour: 8, Minute: 30}, ClockOf(got.UTC(), loc))
}

func TestStartOfDayKeepsCalendarDate(t *testing.T) {
	west := time.FixedZone("PDT", -7*60*60)
	date := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	got := StartOfDay(date, west)

	assert.Equal(t, 6, got.Day())
	assert.Equal(t, west, got.Location())
}

func TestClockOnDaylightSavingDay(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	springForward := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	got := Clock{Hour: 8}.On(springForward, berlin)

	assert.Equal(t, time.Date(2024, 3, 31, 6, 0, 0, 0, time.UTC), got.UTC())
	assert.Equal(t, Clock{Hour: 8}, ClockOf(got, berlin))
	assert.True(t, Clock{Hour: 24}.On(springForward, berlin).Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, berlin)))
}

func TestClockOnDay(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	day := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want Clock
	}{
		{name: "after the clocks jump", at: time.Date(2024, 3, 31, 8, 30, 0, 0, berlin), want: Clock{Hour: 8, Minute: 30}},
		{name: "before the clocks jump", at: time.Date(2024, 3, 31, 1, 0, 0, 0, berlin), want: Clock{Hour: 1}},
		{name: "next midnight", at: time.Date(2024, 4, 1, 0, 0, 0, 0, berlin), want: Clock{Hour: 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockOnDay(day, tt.at, berlin))
		})
	}
	assert.Equal(t, "24:00", ClockOnDay(day, time.Date(2024, 4, 1, 0, 0, 0, 0, berlin), berlin).String())
}
