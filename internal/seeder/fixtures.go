package seeder

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"hireboard/internal/domain/agency"
	"hireboard/internal/domain/contact"
	"hireboard/internal/domain/employer"
	"hireboard/internal/domain/interview"
	"hireboard/internal/domain/job"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var embedded embed.FS

// FixtureSeeder decodes one YAML file holding a list of T.
type FixtureSeeder[T any] struct {
	File   string
	FS     fs.FS
	Assign func(ds *Dataset, items []T)
}

func (s FixtureSeeder[T]) Name() string { return s.File }

func (s FixtureSeeder[T]) Run(ctx context.Context, ds *Dataset) error {
	items, err := s.Load(ctx)
	if err != nil {
		return err
	}
	ds.set(func() { s.Assign(ds, items) })
	return nil
}

func (s FixtureSeeder[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fsys := s.FS
	if fsys == nil {
		sub, err := fs.Sub(embedded, "fixtures")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	b, err := fs.ReadFile(fsys, s.File)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := yaml.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.File, err)
	}
	return items, nil
}

// Fixtures returns the seeders for every fixture-backed collection. A nil
// fsys reads the embedded fixtures.
func Fixtures(fsys fs.FS) []Seeder {
	return []Seeder{
		FixtureSeeder[job.Job]{File: "jobs.yaml", FS: fsys, Assign: func(ds *Dataset, v []job.Job) { ds.Jobs = v }},
		FixtureSeeder[employer.Employer]{File: "employers.yaml", FS: fsys, Assign: func(ds *Dataset, v []employer.Employer) { ds.Employers = v }},
		FixtureSeeder[agency.Agency]{File: "agencies.yaml", FS: fsys, Assign: func(ds *Dataset, v []agency.Agency) { ds.Agencies = v }},
		FixtureSeeder[contact.Contact]{File: "contacts.yaml", FS: fsys, Assign: func(ds *Dataset, v []contact.Contact) { ds.Contacts = v }},
		FixtureSeeder[interview.Interview]{File: "interviews.yaml", FS: fsys, Assign: func(ds *Dataset, v []interview.Interview) { ds.Interviews = v }},
	}
}
