package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydash/internal/seed"
)

func TestGetLevelBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		xp       int
		level    int
		xpToNext int
	}{
		{"null XP ist Stufe 1", 0, 1, 50},
		{"knapp unter Schwelle", 49, 1, 1},
		{"exakt auf Schwelle", 50, 2, 100},
		{"mitten in Stufe 3", 200, 3, 100},
		{"höchste Stufe", 1000, 7, 0},
		{"über höchster Stufe", 5000, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lp := GetLevel(tt.xp)
			assert.Equal(t, tt.level, lp.Current.Level)
			assert.Equal(t, tt.xp, lp.XP)
			assert.Equal(t, tt.xpToNext, lp.XPToNext)
		})
	}
}

func TestGetLevelNextIsNilOnTop(t *testing.T) {
	lp := GetLevel(1200)
	require.Nil(t, lp.Next)

	lp = GetLevel(10)
	require.NotNil(t, lp.Next)
	assert.Equal(t, 2, lp.Next.Level)
}

func TestGetLevelMonotonic(t *testing.T) {
	// Stufen dürfen mit steigenden XP nie fallen
	prev := GetLevel(0).Current.Level
	for xp := 1; xp <= 1100; xp += 7 {
		cur := GetLevel(xp).Current.Level
		require.GreaterOrEqual(t, cur, prev, "xp=%d", xp)
		prev = cur
	}
}

func TestClassifyUrgency(t *testing.T) {
	today := "2026-03-01"

	tests := []struct {
		name string
		date string
		done bool
		want string
	}{
		{"vergangen und offen", "2026-02-20", false, UrgencyOverdue},
		{"vergangen und erledigt", "2026-02-20", true, UrgencyToday},
		{"heute", "2026-03-01", false, UrgencyToday},
		{"in 7 Tagen", "2026-03-08", false, UrgencyThisWeek},
		{"in 8 Tagen", "2026-03-09", false, UrgencyNextWeek},
		{"in 14 Tagen", "2026-03-15", false, UrgencyNextWeek},
		{"in 15 Tagen", "2026-03-16", false, UrgencyFuture},
		{"weit entfernt", "2026-06-01", false, UrgencyFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUrgency(tt.date, today, tt.done))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0), "leere Menge liefert 0 statt Division durch Null")
	assert.Equal(t, 0, Percent(0, 5))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(7, 7))
}

func TestLevelsMatchSeedTable(t *testing.T) {
	lp := GetLevel(0)
	assert.Equal(t, seed.Levels[0].Name, lp.Current.Name)

	top := seed.Levels[len(seed.Levels)-1]
	lp = GetLevel(top.XPRequired)
	assert.Equal(t, top.Name, lp.Current.Name)
}
