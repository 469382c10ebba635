package job

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusFilled    Status = "filled"
	StatusCancelled Status = "cancelled"
)

type Type string

const (
	TypeFullTime Type = "full-time"
	TypePartTime Type = "part-time"
	TypeContract Type = "contract"
	TypeRemote   Type = "remote"
)

type Salary struct {
	Min      int    `yaml:"min"`
	Max      int    `yaml:"max"`
	Currency string `yaml:"currency"`
}

// Job counts (submissions, interviews, offers) are authored snapshots and
// are not derived from candidate or interview records.
type Job struct {
	ID           string    `yaml:"id"`
	Title        string    `yaml:"title"`
	Company      string    `yaml:"company"`
	Location     string    `yaml:"location"`
	Type         Type      `yaml:"type"`
	Status       Status    `yaml:"status"`
	Description  string    `yaml:"description"`
	PostedAt     time.Time `yaml:"posted_at"`
	Salary       *Salary   `yaml:"salary,omitempty"`
	Requirements []string  `yaml:"requirements"`
	Benefits     []string  `yaml:"benefits"`
	RecruiterID  string    `yaml:"recruiter_id"`
	Submissions  int       `yaml:"submissions"`
	Interviews   int       `yaml:"interviews"`
	Offers       int       `yaml:"offers"`
}
