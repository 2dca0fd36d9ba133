package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinedBTC(t *testing.T) {
	tests := []struct {
		name    string
		start   int64
		current int64
		want    float64
	}{
		{name: "first two eras", start: 499500, current: 840000, want: 2943750},
		{name: "third era only", start: 840000, current: 900000, want: 187500},
		{name: "inside first era", start: 499500, current: 500500, want: 12500},
		{name: "start equals current", start: 700000, current: 700000, want: 0},
		{name: "before first era", start: 0, current: 499500, want: 0},
		{name: "start before first era is clamped", start: 400000, current: 500000, want: 500 * 12.5},
		{name: "current below start", start: 900000, current: 850000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinedBTC(tt.start, tt.current))
		})
	}
}

func TestMinedBTC_SpanningFormula(t *testing.T) {
	// start <= 630000 <= current, start >= 499500
	for _, start := range []int64{499500, 550000, 629999, 630000} {
		for _, current := range []int64{630000, 700000, 840000, 840001, 916944} {
			mid := current
			if mid > 840000 {
				mid = 840000
			}
			tail := current - 840000
			if tail < 0 {
				tail = 0
			}
			want := float64(630000-start)*12.5 + float64(mid-630000)*6.25 + float64(tail)*3.125
			assert.Equal(t, want, MinedBTC(start, current), "start=%d current=%d", start, current)
		}
	}
}

func TestEra_Blocks(t *testing.T) {
	era := Era{Start: 100, End: 200, Reward: 1}
	assert.Equal(t, int64(100), era.Blocks(0, 1000))
	assert.Equal(t, int64(50), era.Blocks(150, 1000))
	assert.Equal(t, int64(20), era.Blocks(0, 120))
	assert.Equal(t, int64(0), era.Blocks(250, 300))

	open := Era{Start: 100, Reward: 1}
	assert.True(t, open.Unbounded())
	assert.Equal(t, int64(900), open.Blocks(0, 1000))
}

func TestSchedule_Custom(t *testing.T) {
	s := Schedule{
		{Start: 0, End: 10, Reward: 50},
		{Start: 10, End: 0, Reward: 25},
	}
	assert.Equal(t, 10*50.0+5*25.0, s.MinedBTC(0, 15))
	assert.Equal(t, 0.0, Schedule{}.MinedBTC(0, 15))
}
