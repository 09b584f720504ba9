package contact

import (
	"errors"
	"fmt"
	"time"
)

// Kind discriminates the three intake forms that share the contacts
// collection.
type Kind string

const (
	KindContact      Kind = "contact"
	KindGroupRequest Kind = "group_request"
	KindIssueReport  Kind = "issue_report"
)

type Submission struct {
	ID        string    `firestore:"id" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Message   string    `firestore:"message" json:"message"`
	Kind      Kind      `firestore:"type" json:"type"`
	Phone     *string   `firestore:"phone,omitempty" json:"phone,omitempty"`
	Subject   *string   `firestore:"subject,omitempty" json:"subject,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	Handled   bool      `firestore:"handled" json:"handled"`
}

// Validate checks the kind-dependent required fields. The switch is
// exhaustive over the known kinds; anything else is rejected.
func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return errors.New("name, email and message are required")
	}
	switch s.Kind {
	case KindContact:
		return nil
	case KindGroupRequest:
		if s.Phone == nil || *s.Phone == "" {
			return errors.New("phone is required for a group join request")
		}
		return nil
	case KindIssueReport:
		if s.Subject == nil || *s.Subject == "" {
			return errors.New("subject is required for an issue report")
		}
		return nil
	default:
		return fmt.Errorf("unknown submission type %q", s.Kind)
	}
}

// Filter selects submissions by handled state in the admin triage view.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterPending Filter = "pending"
	FilterHandled Filter = "handled"
)

func (f Filter) IsValid() bool {
	return f == FilterAll || f == FilterPending || f == FilterHandled
}
