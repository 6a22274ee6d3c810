package model

// Entry represents a single logged volunteer activity.
type Entry struct {
	ID    string  `json:"id"`
	Place string  `json:"place"`
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Notes string  `json:"notes"`
}
