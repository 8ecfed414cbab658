package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func newID() string {
	return uuid.NewString()
}

func nowMillis(now time.Time) int64 {
	return now.UnixMilli()
}

func DateString(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
