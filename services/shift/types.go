package shift

import "time"

// Slot is one bookable unit of work within a shift. A pre-assigned slot has
// its occupant fixed by an administrator and is closed to self-service.
type Slot struct {
	ID          string  `firestore:"id" json:"id"`
	AssignedTo  *string `firestore:"assignedTo" json:"assignedTo"`
	PreAssigned bool    `firestore:"preAssigned" json:"preAssigned"`
}

// Shift is a single work shift with its ordered slot list. Slot IDs are
// unique within the shift; fill counts are always derived from the list.
type Shift struct {
	ID          string    `firestore:"id" json:"id"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description" json:"description"`
	Date        time.Time `firestore:"date" json:"date"`
	StartTime   string    `firestore:"startTime" json:"startTime"`
	EndTime     string    `firestore:"endTime" json:"endTime"`
	Location    string    `firestore:"location" json:"location"`
	Slots       []Slot    `firestore:"slots" json:"slots"`
	CreatedBy   string    `firestore:"createdBy" json:"createdBy"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

// Filled returns how many slots are taken. Never persisted, so it cannot
// drift from the slot list.
func (s Shift) Filled() int {
	return Filled(s.Slots)
}
