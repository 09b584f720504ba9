package contact

import (
	"testing"

	"campCrew/utils"
)

func TestSubmissionValidate(t *testing.T) {
	base := Submission{Name: "Dusty", Email: "dusty@example.com", Message: "hello"}

	tests := []struct {
		name    string
		mutate  func(s *Submission)
		wantErr bool
	}{
		{"plain contact", func(s *Submission) { s.Kind = KindContact }, false},
		{"missing message", func(s *Submission) { s.Kind = KindContact; s.Message = "" }, true},
		{"group request with phone", func(s *Submission) {
			s.Kind = KindGroupRequest
			s.Phone = utils.ToPointer("+15550100")
		}, false},
		{"group request without phone", func(s *Submission) { s.Kind = KindGroupRequest }, true},
		{"group request with empty phone", func(s *Submission) {
			s.Kind = KindGroupRequest
			s.Phone = utils.ToPointer("")
		}, true},
		{"issue report with subject", func(s *Submission) {
			s.Kind = KindIssueReport
			s.Subject = utils.ToPointer("broken shade structure")
		}, false},
		{"issue report without subject", func(s *Submission) { s.Kind = KindIssueReport }, true},
		{"unknown kind", func(s *Submission) { s.Kind = "carrier_pigeon" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFilterIsValid(t *testing.T) {
	for _, f := range []Filter{FilterAll, FilterPending, FilterHandled} {
		if !f.IsValid() {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if Filter("done").IsValid() {
		t.Error("expected unknown filter to be invalid")
	}
}
