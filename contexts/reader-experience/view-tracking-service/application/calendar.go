package application

import (
	"math"
	"time"
)

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

func sameWeek(a, b time.Time) bool {
	return weekNumber(a) == weekNumber(b) && a.Year() == b.Year()
}

func sameMonth(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Year() == b.Year()
}

// weekNumber counts weeks from January 1st, offset by Jan 1st's weekday
// (Sunday = 0): ceil(((t - jan1) / 24h + jan1.weekday + 1) / 7).
func weekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.Sub(jan1).Hours() / 24
	return int(math.Ceil((days + float64(int(jan1.Weekday())) + 1) / 7))
}
