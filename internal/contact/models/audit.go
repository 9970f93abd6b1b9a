package models

import "time"

// Audit carries the audit stamp every persisted entity embeds.
//
// Invariants:
//   - CreatedBy/CreatedTime are set exactly once, on insert, and never change
//   - UpdatedBy/UpdatedTime are nil until the first mutation and refreshed on
//     every mutation after that
//
// Callers capture the operation time once (requestcontext.Now) and pass it to
// the stamp, so all rows written in one operation carry an identical
// timestamp and the response echoes exactly what was persisted.
type Audit struct {
	CreatedBy   string     `json:"created_by"`
	CreatedTime time.Time  `json:"created_time"`
	UpdatedBy   *string    `json:"updated_by,omitempty"`
	UpdatedTime *time.Time `json:"updated_time,omitempty"`
}

// StampCreate records the inserting actor and time.
func (a *Audit) StampCreate(username string, now time.Time) {
	a.CreatedBy = username
	a.CreatedTime = now
}

// StampUpdate records the mutating actor and time, leaving the creation stamp
// untouched.
func (a *Audit) StampUpdate(username string, now time.Time) {
	a.UpdatedBy = &username
	a.UpdatedTime = &now
}
