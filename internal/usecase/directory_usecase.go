package usecase

import (
	"context"

	"hireboard/internal/domain/agency"
	"hireboard/internal/domain/contact"
	"hireboard/internal/domain/employer"
	"hireboard/internal/domain/interview"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	"hireboard/internal/listview"
)

type Listing[T any, S any] struct {
	Page[T]
	Stats S
}

type JobStats struct {
	Total       int
	Active      int
	Submissions int
	Interviews  int
}

type EmployerStats struct {
	Count             int
	ActiveJobs        int
	TotalHires        int
	AverageTimeToHire float64
}

type AgencyStats struct {
	Count              int
	ActiveRecruiters   int
	TotalPlacements    int
	AverageSuccessRate float64
}

// ContactStats counts the listed contacts; ByType counts every contact
// regardless of the current filters.
type ContactStats struct {
	Count  int
	ByType map[contact.Type]int
}

type InterviewStats struct {
	Count          int
	ByStatus       map[interview.Status]int
	CompletionRate float64
}

type DirectoryUsecase interface {
	Jobs(ctx context.Context, actor user.Actor, params ListParams) (Listing[job.Job, JobStats], error)
	Employers(ctx context.Context, actor user.Actor, params ListParams) (Listing[employer.Employer, EmployerStats], error)
	Agencies(ctx context.Context, actor user.Actor, params ListParams) (Listing[agency.Agency, AgencyStats], error)
	Contacts(ctx context.Context, actor user.Actor, params ListParams) (Listing[contact.Contact, ContactStats], error)
	Interviews(ctx context.Context, actor user.Actor, params ListParams) (Listing[interview.Interview, InterviewStats], error)
}

type Directory struct {
	store    *Store
	pageSize int
}

func NewDirectoryUsecase(store *Store, pageSize int) *Directory {
	return &Directory{store: store, pageSize: pageSize}
}

func listing[T any, S any](desc listview.Descriptor[T], src []T, params ListParams, pageSize int, stats func(matched []T) S) (Listing[T, S], error) {
	q, err := params.query(pageSize)
	if err != nil {
		return Listing[T, S]{}, err
	}
	page, matched, err := listPage(desc, src, q)
	if err != nil {
		return Listing[T, S]{}, err
	}
	return Listing[T, S]{Page: page, Stats: stats(matched)}, nil
}

// VisibleJobs returns the jobs the actor may see: recruiters only see the
// jobs they own.
func VisibleJobs(actor user.Actor, all []job.Job) []job.Job {
	if actor.IsAdmin() {
		return all
	}
	out := make([]job.Job, 0, len(all))
	for _, j := range all {
		if j.RecruiterID == actor.ID {
			out = append(out, j)
		}
	}
	return out
}

func (u *Directory) Jobs(ctx context.Context, actor user.Actor, params ListParams) (Listing[job.Job, JobStats], error) {
	src := VisibleJobs(actor, u.store.Jobs.Snapshot())
	return listing(JobDescriptor, src, params, u.pageSize, func(js []job.Job) JobStats {
		return JobStats{
			Total:       len(js),
			Active:      listview.Count(js, func(j job.Job) bool { return j.Status == job.StatusActive }),
			Submissions: listview.Sum(js, func(j job.Job) int { return j.Submissions }),
			Interviews:  listview.Sum(js, func(j job.Job) int { return j.Interviews }),
		}
	})
}

func (u *Directory) Employers(ctx context.Context, actor user.Actor, params ListParams) (Listing[employer.Employer, EmployerStats], error) {
	return listing(EmployerDescriptor, u.store.Employers.Snapshot(), params, u.pageSize, func(es []employer.Employer) EmployerStats {
		return EmployerStats{
			Count:             len(es),
			ActiveJobs:        listview.Sum(es, func(e employer.Employer) int { return e.ActiveJobs }),
			TotalHires:        listview.Sum(es, func(e employer.Employer) int { return e.TotalHires }),
			AverageTimeToHire: listview.Average(es, func(e employer.Employer) int { return e.AverageTimeToHire }),
		}
	})
}

func (u *Directory) Agencies(ctx context.Context, actor user.Actor, params ListParams) (Listing[agency.Agency, AgencyStats], error) {
	return listing(AgencyDescriptor, u.store.Agencies.Snapshot(), params, u.pageSize, func(as []agency.Agency) AgencyStats {
		return AgencyStats{
			Count:              len(as),
			ActiveRecruiters:   listview.Sum(as, func(a agency.Agency) int { return a.ActiveRecruiters }),
			TotalPlacements:    listview.Sum(as, func(a agency.Agency) int { return a.TotalPlacements }),
			AverageSuccessRate: listview.Average(as, func(a agency.Agency) float64 { return a.SuccessRate }),
		}
	})
}

func (u *Directory) Contacts(ctx context.Context, actor user.Actor, params ListParams) (Listing[contact.Contact, ContactStats], error) {
	all := u.store.Contacts.Snapshot()
	byType := make(map[contact.Type]int, len(contact.Types))
	for _, t := range contact.Types {
		byType[t] = listview.Count(all, func(c contact.Contact) bool { return c.Type == t })
	}
	return listing(ContactDescriptor, all, params, u.pageSize, func(cs []contact.Contact) ContactStats {
		return ContactStats{Count: len(cs), ByType: byType}
	})
}

func (u *Directory) Interviews(ctx context.Context, actor user.Actor, params ListParams) (Listing[interview.Interview, InterviewStats], error) {
	return listing(InterviewDescriptor, u.store.Interviews.Snapshot(), params, u.pageSize, func(is []interview.Interview) InterviewStats {
		byStatus := make(map[interview.Status]int, len(interview.Statuses))
		for _, s := range interview.Statuses {
			byStatus[s] = listview.Count(is, func(i interview.Interview) bool { return i.Status == s })
		}
		decided := len(is) - byStatus[interview.StatusScheduled]
		return InterviewStats{
			Count:          len(is),
			ByStatus:       byStatus,
			CompletionRate: listview.Ratio(byStatus[interview.StatusCompleted], decided),
		}
	})
}
