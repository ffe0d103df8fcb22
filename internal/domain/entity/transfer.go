package entity

import "time"

// Transfer enregistre un transfert interne entre deux emplacements.
// Invariant : SourceLocation != DestLocation.
type Transfer struct {
	ID             int64
	Reference      string
	Quantity       int64
	SourceLocation string
	DestLocation   string
	Reason         string
	User           string
	CreatedAt      time.Time
}
