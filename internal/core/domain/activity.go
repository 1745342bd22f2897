package domain

import "time"

// ProjectActivity is a single timed record of work performed by a user
// against a project. StartTime is set once at creation; EndTime stays nil
// while the timer is running.
type ProjectActivity struct {
	ID          int64      `json:"id" bson:"_id"`
	Description string     `json:"description" bson:"description"`
	ProjectID   int64      `json:"project" bson:"project_id"`
	UserID      int64      `json:"user" bson:"user_id"`
	StartTime   time.Time  `json:"start_time" bson:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty" bson:"end_time,omitempty"`
}

// IsRunning reports whether the activity is still open.
func (a *ProjectActivity) IsRunning() bool {
	return a.EndTime == nil
}

// ElapsedAt returns the time spent on the activity as of now. A running
// activity is measured against now; a closed one against its end time.
func (a *ProjectActivity) ElapsedAt(now time.Time) time.Duration {
	end := now
	if a.EndTime != nil {
		end = *a.EndTime
	}
	return end.Sub(a.StartTime)
}
