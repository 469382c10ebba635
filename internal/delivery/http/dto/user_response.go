package dto

import "time"

type UserResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	OrganizationID   string `json:"organizationId"`
	OrganizationName string `json:"organizationName"`
	Avatar           string `json:"avatar,omitempty"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type NavItemResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Href  string `json:"href"`
}

type MetricResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Value       int    `json:"value"`
	Description string `json:"description,omitempty"`
}

type AnalyticsResponse struct {
	Metrics            []MetricResponse `json:"metrics"`
	CandidatesByStatus map[string]int   `json:"candidatesByStatus"`
	JobsByStatus       map[string]int   `json:"jobsByStatus"`
}
