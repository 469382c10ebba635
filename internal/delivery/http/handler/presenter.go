package handler

import (
	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/domain/agency"
	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/contact"
	"hireboard/internal/domain/employer"
	"hireboard/internal/domain/interview"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	"hireboard/internal/intake"
	"hireboard/internal/usecase"
)

func toListResponse[T any, R any](p usecase.Page[T], conv func(T) R) dto.ListResponse[R] {
	items := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, conv(it))
	}
	return dto.ListResponse[R]{
		Items:  items,
		Total:  p.Total,
		Limit:  p.Limit,
		Offset: p.Offset,
		Sort: dto.SortResponse{
			Field:     p.Sort.Field,
			Direction: string(p.Sort.Direction),
		},
		VisibleIDs: p.VisibleIDs,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toUserResponse(u user.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             string(u.Role),
		OrganizationID:   u.OrganizationID,
		OrganizationName: u.OrganizationName,
		Avatar:           u.Avatar,
	}
}

func toCandidateResponse(c candidate.Candidate) dto.CandidateResponse {
	return dto.CandidateResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Location:         c.Location,
		LinkedInURL:      c.LinkedInURL,
		ResumeURL:        c.ResumeURL,
		Experience:       c.Experience,
		Notes:            c.Notes,
		Status:           string(c.Status),
		Tags:             orEmpty(c.Tags),
		Skills:           orEmpty(c.Skills),
		AddedAt:          formatTimePtr(c.AddedAt),
		RecruiterID:      c.RecruiterID,
		RecruiterName:    c.RecruiterName,
		OrganizationID:   c.OrganizationID,
		OrganizationName: c.OrganizationName,
	}
}

func toJobResponse(j job.Job) dto.JobResponse {
	out := dto.JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Type:         string(j.Type),
		Status:       string(j.Status),
		Description:  j.Description,
		PostedAt:     formatTime(j.PostedAt),
		Requirements: orEmpty(j.Requirements),
		Benefits:     orEmpty(j.Benefits),
		RecruiterID:  j.RecruiterID,
		Submissions:  j.Submissions,
		Interviews:   j.Interviews,
		Offers:       j.Offers,
	}
	if j.Salary != nil {
		out.Salary = &dto.SalaryResponse{Min: j.Salary.Min, Max: j.Salary.Max, Currency: j.Salary.Currency}
	}
	return out
}

func toEmployerResponse(e employer.Employer) dto.EmployerResponse {
	return dto.EmployerResponse{
		ID:                e.ID,
		Name:              e.Name,
		Industry:          e.Industry,
		Size:              e.Size,
		Location:          e.Location,
		Description:       e.Description,
		Website:           e.Website,
		ContactPerson:     e.ContactPerson,
		Email:             e.Email,
		Phone:             e.Phone,
		Rating:            e.Rating,
		ActiveJobs:        e.ActiveJobs,
		TotalHires:        e.TotalHires,
		AverageTimeToHire: e.AverageTimeToHire,
		JoinedAt:          formatTime(e.JoinedAt),
	}
}

func toAgencyResponse(a agency.Agency) dto.AgencyResponse {
	return dto.AgencyResponse{
		ID:               a.ID,
		Name:             a.Name,
		Tier:             string(a.Tier),
		Location:         a.Location,
		Description:      a.Description,
		Specialization:   orEmpty(a.Specialization),
		Website:          a.Website,
		ContactPerson:    a.ContactPerson,
		Email:            a.Email,
		Phone:            a.Phone,
		Rating:           a.Rating,
		SuccessRate:      a.SuccessRate,
		TotalPlacements:  a.TotalPlacements,
		ActiveRecruiters: a.ActiveRecruiters,
		JoinedAt:         formatTime(a.JoinedAt),
	}
}

func toContactResponse(c contact.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:          c.ID,
		Name:        c.Name,
		Company:     c.Company,
		Position:    c.Position,
		Email:       c.Email,
		Phone:       c.Phone,
		LinkedInURL: c.LinkedInURL,
		Notes:       c.Notes,
		Type:        string(c.Type),
		Tags:        orEmpty(c.Tags),
		LastContact: formatTime(c.LastContact),
	}
}

func toInterviewResponse(i interview.Interview) dto.InterviewResponse {
	return dto.InterviewResponse{
		ID:            i.ID,
		CandidateName: i.CandidateName,
		JobTitle:      i.JobTitle,
		Company:       i.Company,
		Type:          string(i.Type),
		Status:        string(i.Status),
		ScheduledAt:   formatTime(i.ScheduledAt),
		Duration:      i.Duration,
		Interviewers:  orEmpty(i.Interviewers),
		Notes:         i.Notes,
		Feedback:      i.Feedback,
		Rating:        i.Rating,
	}
}

func toIntakeStateResponse(s intake.State) dto.IntakeStateResponse {
	steps := make([]dto.IntakeStepResponse, 0, len(s.Steps))
	for _, st := range s.Steps {
		fields := make([]string, 0, len(st.Fields))
		for _, f := range st.Fields {
			fields = append(fields, string(f))
		}
		steps = append(steps, dto.IntakeStepResponse{
			Index:       st.Index,
			ID:          st.ID,
			Title:       st.Title,
			Description: st.Description,
			Fields:      fields,
			Status:      string(st.Status),
		})
	}

	errs := make(map[string]string, len(s.Errors))
	for f, msg := range s.Errors {
		errs[string(f)] = msg
	}

	values := s.Values
	values.Tags = orEmpty(values.Tags)
	values.Skills = orEmpty(values.Skills)

	return dto.IntakeStateResponse{
		Current: s.Current,
		Steps:   steps,
		Values:  values,
		Errors:  errs,
	}
}

func toBoardResponse(s usecase.BoardSnapshot) dto.BoardResponse {
	q := s.State.Query
	out := dto.BoardResponse{
		Query:       q.Text,
		Status:      orEmpty(q.Facets["status"]),
		Tags:        orEmpty(q.Facets["tags"]),
		TextPending: s.State.TextPending,
		Selected:    orEmpty(s.State.Selected),
		Page:        toListResponse(s.Page, toCandidateResponse),
	}
	if q.Range != nil {
		out.From = formatTimePtr(q.Range.From)
		out.To = formatTimePtr(q.Range.To)
	}
	return out
}
