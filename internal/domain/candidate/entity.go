package candidate

import "time"

type Status string

const (
	StatusSourced      Status = "sourced"
	StatusContacted    Status = "contacted"
	StatusInterviewing Status = "interviewing"
	StatusOffered      Status = "offered"
	StatusHired        Status = "hired"
	StatusDeclined     Status = "declined"
)

var Statuses = []Status{
	StatusSourced,
	StatusContacted,
	StatusInterviewing,
	StatusOffered,
	StatusHired,
	StatusDeclined,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Candidate is a person in the pipeline. Recruiter and organization fields
// are copies taken when the record was created and are never checked
// against the user directory.
type Candidate struct {
	ID          string
	Name        string
	Email       string
	Phone       *string
	Location    *string
	LinkedInURL *string
	ResumeURL   *string
	Experience  *string
	Notes       *string
	Status      Status
	Tags        []string
	Skills      []string
	AddedAt     *time.Time

	RecruiterID      string
	RecruiterName    string
	OrganizationID   string
	OrganizationName string
}

// NewCandidate is the intake payload. Empty strings mean "not provided".
type NewCandidate struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone,omitempty"`
	Location    string   `json:"location,omitempty"`
	LinkedInURL string   `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags"`
	Skills      []string `json:"skills"`
}
