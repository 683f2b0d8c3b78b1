package model

import "time"

// ScheduleDay is one day of the event itinerary.
type ScheduleDay struct {
	DayLabel   string   `json:"day"`
	Activities []string `json:"activities"`
}

// Schedule is the ordered itinerary; its length is the event duration in days.
type Schedule []ScheduleDay

// Dates returns one calendar date per schedule day starting at start.
func (s Schedule) Dates(start time.Time) []string {
	dates := make([]string, len(s))
	for i := range s {
		dates[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}
