package usecase

import (
	"context"

	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/interview"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	"hireboard/internal/listview"
)

type MetricCard struct {
	ID          string
	Title       string
	Value       int
	Description string
}

type Analytics struct {
	Metrics            []MetricCard
	CandidatesByStatus map[candidate.Status]int
	JobsByStatus       map[job.Status]int
}

type StatsUsecase interface {
	Dashboard(ctx context.Context, actor user.Actor) ([]MetricCard, error)
	Analytics(ctx context.Context, actor user.Actor) (Analytics, error)
}

type Stats struct {
	store *Store
}

func NewStatsUsecase(store *Store) *Stats {
	return &Stats{store: store}
}

// Dashboard returns the metric cards for the actor's home screen. Admins
// additionally see network size.
func (u *Stats) Dashboard(ctx context.Context, actor user.Actor) ([]MetricCard, error) {
	jobs := u.store.Jobs.Snapshot()
	interviews := u.store.Interviews.Snapshot()

	cards := []MetricCard{
		{
			ID:          "active-jobs",
			Title:       "Active Jobs",
			Value:       listview.Count(jobs, func(j job.Job) bool { return j.Status == job.StatusActive }),
			Description: "Jobs currently accepting applications",
		},
		{
			ID:          "total-candidates",
			Title:       "Total Candidates",
			Value:       u.store.Candidates.Len(),
			Description: "Candidates in the system",
		},
		{
			ID:          "scheduled-interviews",
			Title:       "Interviews This Week",
			Value:       listview.Count(interviews, func(i interview.Interview) bool { return i.Status == interview.StatusScheduled }),
			Description: "Scheduled interviews",
		},
		{
			ID:          "pending-placements",
			Title:       "Placements Pending",
			Value:       listview.Sum(jobs, func(j job.Job) int { return j.Offers }),
			Description: "Offers extended, awaiting response",
		},
	}

	if actor.IsAdmin() {
		cards = append(cards,
			MetricCard{
				ID:          "active-employers",
				Title:       "Active Employers",
				Value:       u.store.Employers.Len(),
				Description: "Companies actively hiring",
			},
			MetricCard{
				ID:          "partner-agencies",
				Title:       "Partner Agencies",
				Value:       u.store.Agencies.Len(),
				Description: "Recruiting agencies in network",
			},
		)
	}
	return cards, nil
}

func (u *Stats) Analytics(ctx context.Context, actor user.Actor) (Analytics, error) {
	jobs := u.store.Jobs.Snapshot()
	candidates := u.store.Candidates.Snapshot()

	metrics := []MetricCard{
		{ID: "total-jobs", Title: "Total Jobs Posted", Value: len(jobs), Description: "All job postings created"},
		{ID: "active-candidates", Title: "Active Candidates", Value: len(candidates), Description: "Candidates actively being processed"},
		{ID: "interviews", Title: "Interviews Conducted", Value: u.store.Interviews.Len(), Description: "Total interviews scheduled and completed"},
		{
			ID:          "placements",
			Title:       "Successful Placements",
			Value:       listview.Sum(jobs, func(j job.Job) int { return j.Offers }),
			Description: "Candidates successfully placed",
		},
	}
	if actor.IsAdmin() {
		metrics = append(metrics, MetricCard{
			ID:          "agency-partners",
			Title:       "Agency Partners",
			Value:       u.store.Agencies.Len(),
			Description: "Active recruiting agencies",
		})
	}

	byCandidate := make(map[candidate.Status]int, len(candidate.Statuses))
	for _, s := range candidate.Statuses {
		byCandidate[s] = listview.Count(candidates, func(c candidate.Candidate) bool { return c.Status == s })
	}
	byJob := map[job.Status]int{}
	for _, j := range jobs {
		byJob[j.Status]++
	}

	return Analytics{
		Metrics:            metrics,
		CandidatesByStatus: byCandidate,
		JobsByStatus:       byJob,
	}, nil
}
