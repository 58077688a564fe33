package leveling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestXPRequired(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{0, 0},
		{1, 1},
		{2, 6},
		{3, 22},
		{4, 51},
		{5, 100},
		{6, 173},
		{10, 800},
		{100, 800000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, XPRequired(tt.level), "level %d", tt.level)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name string
		xp   int64
		want int
	}{
		{"negative clamps to anchor", -10, 1},
		{"zero is level one", 0, 1},
		{"just below level two", 5, 1},
		{"exactly level two", 6, 2},
		{"level four band", 95, 4},
		{"exactly level five", 100, 5},
		{"one below level six", 172, 5},
		{"large grant spans levels", 5003, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.xp))
		})
	}
}

func TestLevelFor_Extremes(t *testing.T) {
	assert.Equal(t, MaxLevel, LevelFor(XPRequired(MaxLevel)))
	assert.Equal(t, MaxLevel, LevelFor(1<<62))
	assert.Equal(t, MaxLevel-1, LevelFor(XPRequired(MaxLevel)-1))
}

func TestProgress(t *testing.T) {
	assert.InDelta(t, 0.95, Progress(95, 4), 1e-9)
	assert.Equal(t, 1.0, Progress(500, 4), "clamped")
	assert.Equal(t, 0.0, Progress(0, 1))
}

func TestShouldAward(t *testing.T) {
	last := mustTime("2024-05-01T10:00:00Z")
	cooldown := 120 * time.Second

	assert.False(t, ShouldAward(last.Add(119*time.Second), last, cooldown))
	assert.True(t, ShouldAward(last.Add(cooldown), last, cooldown), "cooldown boundary is inclusive")
	assert.True(t, ShouldAward(last.Add(10*cooldown), last, cooldown))
}

func TestDrawXP(t *testing.T) {
	for i := 0; i < 200; i++ {
		xp := DrawXP(3, 5)
		assert.GreaterOrEqual(t, xp, int64(3))
		assert.LessOrEqual(t, xp, int64(5))
	}
}
