package interview

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

var Statuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow}

type Type string

const (
	TypePhone     Type = "phone"
	TypeVideo     Type = "video"
	TypeOnsite    Type = "onsite"
	TypeTechnical Type = "technical"
)

type Interview struct {
	ID            string    `yaml:"id"`
	CandidateName string    `yaml:"candidate_name"`
	JobTitle      string    `yaml:"job_title"`
	Company       string    `yaml:"company"`
	Type          Type      `yaml:"type"`
	Status        Status    `yaml:"status"`
	ScheduledAt   time.Time `yaml:"scheduled_at"`
	Duration      int       `yaml:"duration"`
	Interviewers  []string  `yaml:"interviewers"`
	Notes         *string   `yaml:"notes,omitempty"`
	Feedback      *string   `yaml:"feedback,omitempty"`
	Rating        *float64  `yaml:"rating,omitempty"`
}
