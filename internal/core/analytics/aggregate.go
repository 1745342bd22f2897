// Package analytics sums elapsed time across activity records into a single
// report figure.
package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/projclock/projclock/internal/core/domain"
)

// ErrNoActivities is returned when Aggregate is given zero records. Callers
// decide how to present an empty result; the aggregator itself refuses to
// reduce over nothing.
var ErrNoActivities = errors.New("no activities to aggregate")

// Summary is the total elapsed time across a set of activity records.
// UserID is set only for the per-user variant; the cross-user project total
// omits it.
type Summary struct {
	TotalTime string `json:"total_time"`
	UserID    *int64 `json:"user,omitempty"`
	ProjectID int64  `json:"project"`
}

// Aggregate sums the elapsed time of every record, measuring running
// activities against now. Durations are accumulated exactly (integer
// nanoseconds) so input order never affects the result; rounding to whole
// seconds happens once on the total.
func Aggregate(activities []domain.ProjectActivity, now time.Time) (Summary, error) {
	if len(activities) == 0 {
		return Summary{}, ErrNoActivities
	}

	var total time.Duration
	for i := range activities {
		total += activities[i].ElapsedAt(now)
	}

	userID := activities[0].UserID
	return Summary{
		TotalTime: FormatDuration(total.Round(time.Second)),
		UserID:    &userID,
		ProjectID: activities[0].ProjectID,
	}, nil
}

// AggregateProject is the cross-user variant: records may belong to
// different users, so the user field is left unset.
func AggregateProject(activities []domain.ProjectActivity, now time.Time) (Summary, error) {
	s, err := Aggregate(activities, now)
	if err != nil {
		return Summary{}, err
	}
	s.UserID = nil
	return s, nil
}

// ZeroSummary is the presentation of an empty record set for a project.
func ZeroSummary(projectID int64) Summary {
	return Summary{TotalTime: "0:00:00", ProjectID: projectID}
}

// FormatDuration renders a duration as "D day(s), H:MM:SS", omitting the day
// segment when the total is under one day.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	days := secs / 86400
	secs %= 86400
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	switch {
	case days == 1:
		return fmt.Sprintf("1 day, %d:%02d:%02d", h, m, s)
	case days > 1:
		return fmt.Sprintf("%d days, %d:%02d:%02d", days, h, m, s)
	default:
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
}
