package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/user"

	"github.com/google/uuid"
)

var (
	firstNames = []string{
		"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa",
		"James", "Maria", "William", "Jennifer", "Richard", "Patricia", "Christopher",
		"Linda", "Matthew", "Elizabeth", "Anthony", "Barbara", "Mark", "Susan",
		"Steven", "Jessica", "Andrew", "Margaret", "Kenneth", "Dorothy", "Paul",
		"Joshua", "Nancy", "Kevin", "Karen", "Brian", "Betty",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
		"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	}
	companies = []string{
		"Google", "Apple", "Microsoft", "Amazon", "Meta", "Netflix", "Tesla",
		"Uber", "Airbnb", "Stripe", "Spotify", "Slack", "Zoom", "Dropbox",
		"Adobe", "Salesforce", "Oracle", "IBM", "Intel", "Nvidia",
	}
	skillPool = []string{
		"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java",
		"Go", "Rust", "AWS", "Docker", "Kubernetes", "PostgreSQL", "MongoDB",
		"GraphQL", "REST APIs", "Machine Learning", "DevOps", "CI/CD",
		"Product Management", "UI/UX Design", "Data Science", "Marketing",
	}
	locations = []string{
		"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
		"Boston, MA", "Los Angeles, CA", "Chicago, IL", "Denver, CO",
		"Portland, OR", "Miami, FL", "Remote", "London, UK", "Berlin, Germany",
		"Toronto, Canada", "Sydney, Australia",
	}
	tagPool = []string{
		"Senior", "Mid-level", "Junior", "Remote", "Full-time", "Contract",
		"Frontend", "Backend", "Full-stack", "Mobile", "DevOps", "AI/ML",
		"Product", "Design", "Marketing", "Sales", "Data", "Security",
	}
)

// CandidateSeeder generates Count pseudo-random candidates owned by the
// given recruiters. The same Seed always produces the same records.
type CandidateSeeder struct {
	Count      int
	Seed       int64
	Recruiters []user.User
	Now        func() time.Time
}

func (CandidateSeeder) Name() string { return "candidates" }

func (s CandidateSeeder) Run(ctx context.Context, ds *Dataset) error {
	out, err := s.Generate(ctx)
	if err != nil {
		return err
	}
	ds.set(func() { ds.Candidates = out })
	return nil
}

func (s CandidateSeeder) Generate(ctx context.Context) ([]candidate.Candidate, error) {
	if s.Count < 0 {
		return nil, fmt.Errorf("negative candidate count %d", s.Count)
	}
	if s.Count > 0 && len(s.Recruiters) == 0 {
		return nil, fmt.Errorf("no recruiters to assign candidates to")
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	base := now().UTC()
	rng := rand.New(rand.NewSource(s.Seed))

	out := make([]candidate.Candidate, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := generateCandidate(rng, base, s.Recruiters)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func generateCandidate(rng *rand.Rand, now time.Time, recruiters []user.User) (candidate.Candidate, error) {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return candidate.Candidate{}, err
	}

	first := pick(rng, firstNames)
	last := pick(rng, lastNames)
	slug := strings.ToLower(first) + "-" + strings.ToLower(last)
	recruiter := pick(rng, recruiters)
	addedAt := now.Add(-time.Duration(rng.Intn(30)) * 24 * time.Hour)

	c := candidate.Candidate{
		ID:               "candidate-" + id.String(),
		Name:             first + " " + last,
		Email:            strings.ToLower(first) + "." + strings.ToLower(last) + "@email.com",
		Status:           pick(rng, candidate.Statuses),
		Tags:             pickSome(rng, tagPool, 4),
		Skills:           pickSome(rng, skillPool, 6),
		AddedAt:          &addedAt,
		Location:         ptr(pick(rng, locations)),
		Experience:       ptr(fmt.Sprintf("%d years", rng.Intn(15)+1)),
		RecruiterID:      recruiter.ID,
		RecruiterName:    recruiter.Name,
		OrganizationID:   recruiter.OrganizationID,
		OrganizationName: recruiter.OrganizationName,
	}
	if rng.Float64() > 0.3 {
		c.Phone = ptr(fmt.Sprintf("+1-%d-%d-%d", rng.Intn(900)+100, rng.Intn(900)+100, rng.Intn(9000)+1000))
	}
	if rng.Float64() > 0.5 {
		c.Notes = ptr(fmt.Sprintf("Experienced professional with %d years at %s.", rng.Intn(10)+1, pick(rng, companies)))
	}
	if rng.Float64() > 0.4 {
		c.LinkedInURL = ptr("https://linkedin.com/in/" + slug)
	}
	return c, nil
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// pickSome returns between 1 and limit distinct items.
func pickSome(rng *rand.Rand, items []string, limit int) []string {
	n := rng.Intn(limit) + 1
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(items))[:n] {
		out = append(out, items[i])
	}
	return out
}

func ptr(s string) *string { return &s }
