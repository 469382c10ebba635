package dto

type SalaryResponse struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type JobResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Location     string          `json:"location"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Description  string          `json:"description"`
	PostedAt     string          `json:"postedAt"`
	Salary       *SalaryResponse `json:"salary,omitempty"`
	Requirements []string        `json:"requirements"`
	Benefits     []string        `json:"benefits"`
	RecruiterID  string          `json:"recruiterId"`
	Submissions  int             `json:"submissions"`
	Interviews   int             `json:"interviews"`
	Offers       int             `json:"offers"`
}

type EmployerResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Industry          string  `json:"industry"`
	Size              string  `json:"size"`
	Location          string  `json:"location"`
	Description       string  `json:"description"`
	Website           string  `json:"website"`
	ContactPerson     string  `json:"contactPerson"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Rating            float64 `json:"rating"`
	ActiveJobs        int     `json:"activeJobs"`
	TotalHires        int     `json:"totalHires"`
	AverageTimeToHire int     `json:"averageTimeToHire"`
	JoinedAt          string  `json:"joinedAt"`
}

type AgencyResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Tier             string   `json:"tier"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Specialization   []string `json:"specialization"`
	Website          string   `json:"website"`
	ContactPerson    string   `json:"contactPerson"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Rating           float64  `json:"rating"`
	SuccessRate      float64  `json:"successRate"`
	TotalPlacements  int      `json:"totalPlacements"`
	ActiveRecruiters int      `json:"activeRecruiters"`
	JoinedAt         string   `json:"joinedAt"`
}

type ContactResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Email       string   `json:"email"`
	Phone       *string  `json:"phone,omitempty"`
	LinkedInURL *string  `json:"linkedinUrl,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
	LastContact string   `json:"lastContact"`
}

type InterviewResponse struct {
	ID            string   `json:"id"`
	CandidateName string   `json:"candidateName"`
	JobTitle      string   `json:"jobTitle"`
	Company       string   `json:"company"`
	Type          string   `json:"type"`
	Status        string   `json:"status"`
	ScheduledAt   string   `json:"scheduledAt"`
	Duration      int      `json:"duration"`
	Interviewers  []string `json:"interviewers"`
	Notes         *string  `json:"notes,omitempty"`
	Feedback      *string  `json:"feedback,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

type JobStatsResponse struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Submissions int `json:"submissions"`
	Interviews  int `json:"interviews"`
}

type EmployerStatsResponse struct {
	Count             int     `json:"count"`
	ActiveJobs        int     `json:"activeJobs"`
	TotalHires        int     `json:"totalHires"`
	AverageTimeToHire float64 `json:"averageTimeToHire"`
}

type AgencyStatsResponse struct {
	Count              int     `json:"count"`
	ActiveRecruiters   int     `json:"activeRecruiters"`
	TotalPlacements    int     `json:"totalPlacements"`
	AverageSuccessRate float64 `json:"averageSuccessRate"`
}

type ContactStatsResponse struct {
	Count  int            `json:"count"`
	ByType map[string]int `json:"byType"`
}

type InterviewStatsResponse struct {
	Count          int            `json:"count"`
	ByStatus       map[string]int `json:"byStatus"`
	CompletionRate float64        `json:"completionRate"`
}
