package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// monthRange resolves the first and last calendar day of a month.
func monthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

// summaryCacheKey addresses one user's cached monthly summary. Mutations
// delete the key for the affected month so reads never see stale totals.
func summaryCacheKey(userID uuid.UUID, year, month int) string {
	return fmt.Sprintf("summary:%s:%04d-%02d", userID, year, month)
}

// parseDate parses an ISO calendar date, trimming surrounding whitespace.
// It returns false for empty or unparsable input.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
