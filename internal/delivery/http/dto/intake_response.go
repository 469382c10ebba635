package dto

import "hireboard/internal/domain/candidate"

type IntakeStepResponse struct {
	Index       int      `json:"index"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
	Status      string   `json:"status"`
}

type IntakeStateResponse struct {
	Current int                    `json:"current"`
	Steps   []IntakeStepResponse   `json:"steps"`
	Values  candidate.NewCandidate `json:"values"`
	Errors  map[string]string      `json:"errors"`
}

type IntakeItemRequest struct {
	Value string `json:"value"`
}

type IntakeSubmitResponse struct {
	Candidate CandidateResponse   `json:"candidate"`
	State     IntakeStateResponse `json:"state"`
}

type ValidationErrorResponse struct {
	Fields map[string]string `json:"fields"`
}
