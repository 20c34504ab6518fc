package dashboard

import "time"

// Weather is the already-fetched reading for the header line. How it was
// obtained is the collaborator's business; the composer only formats it.
type Weather struct {
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
}

// Event is one calendar entry. Events arrive chronologically sorted and are
// displayed in that order.
type Event struct {
	Start   time.Time `json:"start"`
	Summary string    `json:"summary"`
	AllDay  bool      `json:"allDay"`
}

// Todo is one task entry. Display order is the caller's order; the composer
// never re-sorts.
type Todo struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Model is everything one dashboard render needs. Date doubles as "now":
// the composer never reads the wall clock, which keeps renders deterministic
// and testable.
type Model struct {
	Date    time.Time `json:"date"`
	Weather *Weather  `json:"weather,omitempty"`
	Events  []Event   `json:"events"`
	Todos   []Todo    `json:"todos"`
	Lang    string    `json:"lang"`
}
