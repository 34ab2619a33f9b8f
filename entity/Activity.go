package entity

import "time"

type ActivityType string

const (
	ActivityUser  ActivityType = "user"
	ActivityOrder ActivityType = "order"
)

// Activity is one row of the admin feed, either from history or pushed live.
type Activity struct {
	Type      ActivityType `json:"type"`
	Title     string       `json:"title"`
	Timestamp time.Time    `json:"timestamp"`
}
