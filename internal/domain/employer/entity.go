package employer

import "time"

type Employer struct {
	ID                string    `yaml:"id"`
	Name              string    `yaml:"name"`
	Industry          string    `yaml:"industry"`
	Size              string    `yaml:"size"`
	Location          string    `yaml:"location"`
	Description       string    `yaml:"description"`
	Website           string    `yaml:"website"`
	ContactPerson     string    `yaml:"contact_person"`
	Email             string    `yaml:"email"`
	Phone             string    `yaml:"phone"`
	Rating            float64   `yaml:"rating"`
	ActiveJobs        int       `yaml:"active_jobs"`
	TotalHires        int       `yaml:"total_hires"`
	AverageTimeToHire int       `yaml:"average_time_to_hire"`
	JoinedAt          time.Time `yaml:"joined_at"`
}
