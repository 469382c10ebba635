package contact

import "time"

type Type string

const (
	TypeEmployer  Type = "employer"
	TypeAgency    Type = "agency"
	TypeCandidate Type = "candidate"
	TypeVendor    Type = "vendor"
)

var Types = []Type{TypeEmployer, TypeAgency, TypeCandidate, TypeVendor}

type Contact struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Company     string    `yaml:"company"`
	Position    string    `yaml:"position"`
	Email       string    `yaml:"email"`
	Phone       *string   `yaml:"phone,omitempty"`
	LinkedInURL *string   `yaml:"linkedin_url,omitempty"`
	Notes       *string   `yaml:"notes,omitempty"`
	Type        Type      `yaml:"type"`
	Tags        []string  `yaml:"tags"`
	LastContact time.Time `yaml:"last_contact"`
}
