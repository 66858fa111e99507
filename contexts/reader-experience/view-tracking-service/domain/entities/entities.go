package entities

import "time"

// ViewBucket is one calendar period's worth of qualifying reads. Date is the
// timestamp of the first read that opened the bucket.
type ViewBucket struct {
	Date  time.Time
	Views int
}

// ViewRecord aggregates views for a single comic. Lifecycle is 1:1 with the
// comic; the bucket sequences hold at most one entry per calendar day, week
// and month respectively and are never pruned.
type ViewRecord struct {
	ComicID      string
	TotalViews   int
	DailyViews   []ViewBucket
	WeeklyViews  []ViewBucket
	MonthlyViews []ViewBucket
	UpdatedAt    time.Time
}

func (r ViewRecord) Clone() ViewRecord {
	r.DailyViews = append([]ViewBucket(nil), r.DailyViews...)
	r.WeeklyViews = append([]ViewBucket(nil), r.WeeklyViews...)
	r.MonthlyViews = append([]ViewBucket(nil), r.MonthlyViews...)
	return r
}
