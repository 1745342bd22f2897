package domain

import "time"

// Project groups activities and carries the membership roster that gates who
// may log time against it.
type Project struct {
	ID          int64      `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Technology  []string   `json:"technology" bson:"technology"`
	Members     []int64    `json:"members" bson:"members"`
	StartDate   time.Time  `json:"start_date" bson:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
}

// IsActiveAt reports whether the project still accepts new activities at the
// given instant. A project with no end date is always active; otherwise it is
// active while the end date is on or after now's calendar date. An end date
// equal to today still counts as active.
func (p *Project) IsActiveAt(now time.Time) bool {
	if p.EndDate == nil {
		return true
	}
	end := dateOf(*p.EndDate)
	today := dateOf(now)
	return !end.Before(today)
}

// HasMember reports whether the user id is on the membership roster.
func (p *Project) HasMember(userID int64) bool {
	for _, id := range p.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// dateOf truncates an instant to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
