package window

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoldSentinel/internal/model"
)

// barsOn builds count bars on each of the given days (offsets from a base date).
func barsOn(days []int, count int) []model.Bar {
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	var bars []model.Bar
	for _, d := range days {
		for i := 0; i < count; i++ {
			bars = append(bars, model.Bar{
				Time:  base.AddDate(0, 0, d).Add(time.Duration(i) * 15 * time.Minute),
				Close: 2400 + float64(d) + float64(i)*0.1,
			})
		}
	}
	return bars
}

func TestSegment_WindowCount(t *testing.T) {
	tests := []struct {
		days   int
		window int
		want   int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 2, 2},
		{5, 2, 4},
		{5, 5, 1},
		{5, 3, 3},
		{2, 3, 0},
		{0, 2, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("d%d_w%d", tt.days, tt.window), func(t *testing.T) {
			days := make([]int, tt.days)
			for i := range days {
				days[i] = i
			}
			got := Segment(barsOn(days, 3), tt.window)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSegment_WindowsOverlapByOneDate(t *testing.T) {
	ws := Segment(barsOn([]int{0, 1, 2}, 4), 2)
	require.Len(t, ws, 2)
	assert.Equal(t, ws[0].End(), ws[1].Start())
	assert.Equal(t, "2024-03-04", ws[0].Start())
	assert.Equal(t, "2024-03-05", ws[0].End())
	assert.Equal(t, "2024-03-06", ws[1].End())
	assert.Len(t, ws[0].Bars, 8)
}

func TestSegment_DuplicateDatesCollapse(t *testing.T) {
	// Several bars per day must count as one distinct date.
	bars := barsOn([]int{0, 0, 1}, 2) // day 0 appears twice
	ws := Segment(bars, 2)
	require.Len(t, ws, 1)
	assert.Len(t, ws[0].Bars, 6)
}

func TestSegment_GapsInCalendar(t *testing.T) {
	// A weekend gap: distinct dates still slide by position, not by calendar math.
	ws := Segment(barsOn([]int{0, 1, 4}, 2), 2)
	require.Len(t, ws, 2)
	assert.Equal(t, "2024-03-05", ws[1].Start())
	assert.Equal(t, "2024-03-08", ws[1].End())
}

func TestSegment_InvalidInputs(t *testing.T) {
	assert.Nil(t, Segment(nil, 2))
	assert.Nil(t, Segment(barsOn([]int{0, 1}, 2), 0))
	assert.Nil(t, Segment(barsOn([]int{0, 1}, 2), -1))
}

func TestSegment_BarsStayInTimeOrder(t *testing.T) {
	ws := Segment(barsOn([]int{0, 1, 2}, 5), 3)
	require.Len(t, ws, 1)
	for i := 1; i < len(ws[0].Bars); i++ {
		assert.True(t, ws[0].Bars[i-1].Time.Before(ws[0].Bars[i].Time))
	}
}
