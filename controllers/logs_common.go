package controllers

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	// listLimit caps every log listing query.
	listLimit = 1000
)

// dateFilter applies the date query parameters to a log query. An exact
// `date` wins over the `[start_date, end_date]` range; the range compares the
// ISO-8601 strings lexically, which matches chronological order.
func dateFilter(ctx *gin.Context, q *gorm.DB) *gorm.DB {
	if d := ctx.Query("date"); d != "" {
		return q.Where("date = ?", d)
	}
	start, end := ctx.Query("start_date"), ctx.Query("end_date")
	if start != "" && end != "" {
		return q.Where("date >= ? AND date <= ?", start, end)
	}
	return q
}

// weekWindow returns the current ISO week window [Monday, today] as date
// strings, computed on the UTC calendar.
func weekWindow(now time.Time) (string, string) {
	today := now.UTC()
	offset := (int(today.Weekday()) + 6) % 7 // Monday = 0
	monday := today.AddDate(0, 0, -offset)
	return monday.Format(dateLayout), today.Format(dateLayout)
}

// monthWindow returns the spending summary window. An explicit YYYY-MM month
// spans from its 1st through the 1st of the next month; the default window
// runs from the 1st of the current month through today.
func monthWindow(month string, now time.Time) (string, string, error) {
	if month == "" {
		today := now.UTC()
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first.Format(dateLayout), today.Format(dateLayout), nil
	}
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", err
	}
	return first.Format(dateLayout), first.AddDate(0, 1, 0).Format(dateLayout), nil
}

// round2 rounds to two decimals for response fields.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
