package seeder

import (
	"context"
	"fmt"
	"log"
	"sync"

	"hireboard/internal/domain/agency"
	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/contact"
	"hireboard/internal/domain/employer"
	"hireboard/internal/domain/interview"
	"hireboard/internal/domain/job"

	"golang.org/x/sync/errgroup"
)

// Dataset holds every collection the service starts with.
type Dataset struct {
	mu sync.Mutex

	Candidates []candidate.Candidate
	Jobs       []job.Job
	Employers  []employer.Employer
	Agencies   []agency.Agency
	Contacts   []contact.Contact
	Interviews []interview.Interview
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, ds *Dataset) error
}

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

// Run executes all seeders concurrently. The first failure cancels the rest.
func (r Runner) Run(ctx context.Context) (*Dataset, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	ds := &Dataset{}
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		g.Go(func() error {
			if err := s.Run(gctx, ds); err != nil {
				return fmt.Errorf("seed %s: %w", s.Name(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Printf("[Seeder] loaded candidates=%d jobs=%d employers=%d agencies=%d contacts=%d interviews=%d",
		len(ds.Candidates), len(ds.Jobs), len(ds.Employers), len(ds.Agencies), len(ds.Contacts), len(ds.Interviews))
	return ds, nil
}

func (ds *Dataset) set(fn func()) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	fn()
}
