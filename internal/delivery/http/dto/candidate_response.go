package dto

type CandidateResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            *string  `json:"phone,omitempty"`
	Location         *string  `json:"location,omitempty"`
	LinkedInURL      *string  `json:"linkedinUrl,omitempty"`
	ResumeURL        *string  `json:"resumeUrl,omitempty"`
	Experience       *string  `json:"experience,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	Status           string   `json:"status"`
	Tags             []string `json:"tags"`
	Skills           []string `json:"skills"`
	AddedAt          *string  `json:"addedAt"`
	RecruiterID      string   `json:"recruiterId"`
	RecruiterName    string   `json:"recruiterName"`
	OrganizationID   string   `json:"organizationId"`
	OrganizationName string   `json:"organizationName"`
}

type BulkIDsRequest struct {
	IDs     []string `json:"ids"`
	Confirm bool     `json:"confirm"`
}

type BulkEmailRequest struct {
	IDs     []string `json:"ids"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

type BulkResultResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

type BoardQueryRequest struct {
	Query  *string  `json:"query"`
	Status []string `json:"status"`
	Tags   []string `json:"tags"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
	Flush  bool     `json:"flush"`
}

type BoardResponse struct {
	Query       string                          `json:"query"`
	Status      []string                        `json:"status"`
	Tags        []string                        `json:"tags"`
	From        *string                         `json:"from"`
	To          *string                         `json:"to"`
	TextPending bool                            `json:"textPending"`
	Selected    []string                        `json:"selected"`
	Page        ListResponse[CandidateResponse] `json:"page"`
}
