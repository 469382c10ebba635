package usecase

import (
	"time"

	"hireboard/internal/domain/agency"
	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/contact"
	"hireboard/internal/domain/employer"
	"hireboard/internal/domain/interview"
	"hireboard/internal/domain/job"
	"hireboard/internal/listview"
)

var CandidateDescriptor = listview.Descriptor[candidate.Candidate]{
	Name: "candidates",
	ID:   func(c candidate.Candidate) string { return c.ID },
	Search: []listview.Extractor[candidate.Candidate]{
		listview.Field(func(c candidate.Candidate) string { return c.Name }),
		listview.Field(func(c candidate.Candidate) string { return c.Email }),
		listview.OptField(func(c candidate.Candidate) *string { return c.Location }),
		listview.OptField(func(c candidate.Candidate) *string { return c.Notes }),
		listview.Fields(func(c candidate.Candidate) []string { return c.Skills }),
	},
	Facets: map[string]listview.Extractor[candidate.Candidate]{
		"status": listview.Field(func(c candidate.Candidate) string { return string(c.Status) }),
		"tags":   listview.Fields(func(c candidate.Candidate) []string { return c.Tags }),
	},
	Sorts: map[string]listview.SortKey[candidate.Candidate]{
		"name":     listview.StringKey(func(c candidate.Candidate) string { return c.Name }),
		"email":    listview.StringKey(func(c candidate.Candidate) string { return c.Email }),
		"status":   listview.StringKey(func(c candidate.Candidate) string { return string(c.Status) }),
		"location": listview.OptStringKey(func(c candidate.Candidate) *string { return c.Location }),
		"addedAt":  listview.OptTimeKey(func(c candidate.Candidate) *time.Time { return c.AddedAt }),
	},
	Date:    func(c candidate.Candidate) *time.Time { return c.AddedAt },
	Default: listview.SortSpec{Field: "addedAt", Direction: listview.Desc},
}

var JobDescriptor = listview.Descriptor[job.Job]{
	Name: "jobs",
	ID:   func(j job.Job) string { return j.ID },
	Search: []listview.Extractor[job.Job]{
		listview.Field(func(j job.Job) string { return j.Title }),
		listview.Field(func(j job.Job) string { return j.Company }),
		listview.Field(func(j job.Job) string { return j.Location }),
	},
	Facets: map[string]listview.Extractor[job.Job]{
		"status": listview.Field(func(j job.Job) string { return string(j.Status) }),
		"type":   listview.Field(func(j job.Job) string { return string(j.Type) }),
	},
	Sorts: map[string]listview.SortKey[job.Job]{
		"title":       listview.StringKey(func(j job.Job) string { return j.Title }),
		"company":     listview.StringKey(func(j job.Job) string { return j.Company }),
		"postedAt":    listview.TimeKey(func(j job.Job) time.Time { return j.PostedAt }),
		"submissions": listview.IntKey(func(j job.Job) int { return j.Submissions }),
	},
	Date:    func(j job.Job) *time.Time { return &j.PostedAt },
	Default: listview.SortSpec{Field: "postedAt", Direction: listview.Desc},
}

var EmployerDescriptor = listview.Descriptor[employer.Employer]{
	Name: "employers",
	ID:   func(e employer.Employer) string { return e.ID },
	Search: []listview.Extractor[employer.Employer]{
		listview.Field(func(e employer.Employer) string { return e.Name }),
		listview.Field(func(e employer.Employer) string { return e.Industry }),
		listview.Field(func(e employer.Employer) string { return e.Location }),
	},
	Facets: map[string]listview.Extractor[employer.Employer]{
		"industry": listview.Field(func(e employer.Employer) string { return e.Industry }),
		"size":     listview.Field(func(e employer.Employer) string { return e.Size }),
	},
	Sorts: map[string]listview.SortKey[employer.Employer]{
		"name":       listview.StringKey(func(e employer.Employer) string { return e.Name }),
		"rating":     listview.FloatKey(func(e employer.Employer) float64 { return e.Rating }),
		"activeJobs": listview.IntKey(func(e employer.Employer) int { return e.ActiveJobs }),
		"totalHires": listview.IntKey(func(e employer.Employer) int { return e.TotalHires }),
		"joinedAt":   listview.TimeKey(func(e employer.Employer) time.Time { return e.JoinedAt }),
	},
	Date:    func(e employer.Employer) *time.Time { return &e.JoinedAt },
	Default: listview.SortSpec{Field: "name", Direction: listview.Asc},
}

var agencySuccessRate = listview.FloatKey(func(a agency.Agency) float64 { return a.SuccessRate })

var AgencyDescriptor = listview.Descriptor[agency.Agency]{
	Name: "agencies",
	ID:   func(a agency.Agency) string { return a.ID },
	Search: []listview.Extractor[agency.Agency]{
		listview.Field(func(a agency.Agency) string { return a.Name }),
		listview.Field(func(a agency.Agency) string { return a.Location }),
		listview.Fields(func(a agency.Agency) []string { return a.Specialization }),
	},
	Facets: map[string]listview.Extractor[agency.Agency]{
		"tier":           listview.Field(func(a agency.Agency) string { return string(a.Tier) }),
		"specialization": listview.Fields(func(a agency.Agency) []string { return a.Specialization }),
	},
	Sorts: map[string]listview.SortKey[agency.Agency]{
		"name":        listview.StringKey(func(a agency.Agency) string { return a.Name }),
		"tier":        listview.IntKey(func(a agency.Agency) int { return a.Tier.Rank() }).Then(agencySuccessRate),
		"successRate": agencySuccessRate,
		"placements":  listview.IntKey(func(a agency.Agency) int { return a.TotalPlacements }),
		"rating":      listview.FloatKey(func(a agency.Agency) float64 { return a.Rating }),
	},
	Date:    func(a agency.Agency) *time.Time { return &a.JoinedAt },
	Default: listview.SortSpec{Field: "tier", Direction: listview.Desc},
}

var ContactDescriptor = listview.Descriptor[contact.Contact]{
	Name: "contacts",
	ID:   func(c contact.Contact) string { return c.ID },
	Search: []listview.Extractor[contact.Contact]{
		listview.Field(func(c contact.Contact) string { return c.Name }),
		listview.Field(func(c contact.Contact) string { return c.Company }),
		listview.Field(func(c contact.Contact) string { return c.Position }),
		listview.Field(func(c contact.Contact) string { return c.Email }),
	},
	Facets: map[string]listview.Extractor[contact.Contact]{
		"type": listview.Field(func(c contact.Contact) string { return string(c.Type) }),
		"tags": listview.Fields(func(c contact.Contact) []string { return c.Tags }),
	},
	Sorts: map[string]listview.SortKey[contact.Contact]{
		"name":        listview.StringKey(func(c contact.Contact) string { return c.Name }),
		"company":     listview.StringKey(func(c contact.Contact) string { return c.Company }),
		"lastContact": listview.TimeKey(func(c contact.Contact) time.Time { return c.LastContact }),
	},
	Date:    func(c contact.Contact) *time.Time { return &c.LastContact },
	Default: listview.SortSpec{Field: "lastContact", Direction: listview.Desc},
}

var InterviewDescriptor = listview.Descriptor[interview.Interview]{
	Name: "interviews",
	ID:   func(i interview.Interview) string { return i.ID },
	Search: []listview.Extractor[interview.Interview]{
		listview.Field(func(i interview.Interview) string { return i.CandidateName }),
		listview.Field(func(i interview.Interview) string { return i.JobTitle }),
		listview.Field(func(i interview.Interview) string { return i.Company }),
	},
	Facets: map[string]listview.Extractor[interview.Interview]{
		"status": listview.Field(func(i interview.Interview) string { return string(i.Status) }),
		"type":   listview.Field(func(i interview.Interview) string { return string(i.Type) }),
	},
	Sorts: map[string]listview.SortKey[interview.Interview]{
		"scheduledAt":   listview.TimeKey(func(i interview.Interview) time.Time { return i.ScheduledAt }),
		"candidateName": listview.StringKey(func(i interview.Interview) string { return i.CandidateName }),
		"rating":        listview.OptFloatKey(func(i interview.Interview) *float64 { return i.Rating }),
	},
	Date:    func(i interview.Interview) *time.Time { return &i.ScheduledAt },
	Default: listview.SortSpec{Field: "scheduledAt", Direction: listview.Desc},
}
