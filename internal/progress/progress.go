// Package progress enthält die reinen Berechnungen für Stufen, Prozentwerte
// und Deadline-Dringlichkeit. Keine Seiteneffekte, keine Persistenz.
package progress

import (
	"math"
	"time"

	"studydash/internal/models"
	"studydash/internal/seed"
)

// Dringlichkeitsstufen einer Deadline relativ zum heutigen Datum
const (
	UrgencyOverdue  = "overdue"
	UrgencyToday    = "today"
	UrgencyThisWeek = "this_week"
	UrgencyNextWeek = "next_week"
	UrgencyFuture   = "future"
)

// GetLevel bestimmt die aktuelle Stufe zu einem XP-Stand.
// Aktuell ist die höchste Stufe, deren Schwelle erreicht ist; Next die
// niedrigste noch nicht erreichte (nil auf der höchsten Stufe).
func GetLevel(xp int) models.LevelProgress {
	current := seed.Levels[0]
	for _, lvl := range seed.Levels {
		if xp >= lvl.XPRequired {
			current = lvl
		}
	}

	var next *models.Level
	for _, lvl := range seed.Levels {
		if lvl.XPRequired > xp {
			l := lvl
			next = &l
			break
		}
	}

	xpToNext := 0
	if next != nil {
		xpToNext = next.XPRequired - xp
	}

	return models.LevelProgress{
		Current:  current,
		Next:     next,
		XP:       xp,
		XPToNext: xpToNext,
	}
}

// ClassifyUrgency ordnet eine Deadline relativ zu today (beides YYYY-MM-DD)
// in eine Dringlichkeitsstufe ein. Erledigte Deadlines in der Vergangenheit
// gelten nicht als überfällig.
func ClassifyUrgency(date string, today string, done bool) string {
	if date < today && !done {
		return UrgencyOverdue
	}
	if date <= today {
		return UrgencyToday
	}

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return UrgencyFuture
	}
	t, err := time.Parse("2006-01-02", today)
	if err != nil {
		return UrgencyFuture
	}

	daysAway := int(d.Sub(t).Hours() / 24)
	switch {
	case daysAway <= 7:
		return UrgencyThisWeek
	case daysAway <= 14:
		return UrgencyNextWeek
	default:
		return UrgencyFuture
	}
}

// Percent liefert den gerundeten Anteil completed/total in Prozent.
// Bei total == 0 ist das Ergebnis 0, nicht ein Division-durch-Null-Fehler.
func Percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
