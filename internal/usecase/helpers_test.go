package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/user"
	"hireboard/internal/infrastructure/mailer"
	"hireboard/internal/repository"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func admin() user.Actor {
	u, _ := user.DefaultDirectory().Find("user-admin")
	return user.Actor{User: u}
}

func agencyRecruiter() user.Actor {
	u, _ := user.DefaultDirectory().Find("user-agency-1")
	return user.Actor{User: u}
}

func at(day int) *time.Time {
	t := time.Date(2024, 5, day, 10, 0, 0, 0, time.UTC)
	return &t
}

func sampleCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{ID: "c1", Name: "Ada Lovelace", Email: "ada@example.com", Status: candidate.StatusSourced, Tags: []string{"Senior"}, Skills: []string{"Go"}, AddedAt: at(1)},
		{ID: "c2", Name: "Alan Turing", Email: "alan@example.com", Status: candidate.StatusHired, Tags: []string{"Backend"}, Skills: []string{"Python"}, AddedAt: at(3)},
		{ID: "c3", Name: "Grace Hopper", Email: "grace@example.com", Status: candidate.StatusHired, Tags: []string{"Senior", "Backend"}, Skills: []string{"COBOL"}, AddedAt: at(2)},
		{ID: "c4", Name: "Edsger Dijkstra", Email: "edsger@example.com", Status: candidate.StatusContacted},
	}
}

func candidateStore() *repository.Collection[candidate.Candidate] {
	return repository.NewCollection(CandidateDescriptor.ID, sampleCandidates())
}

type mockExporter struct {
	got []candidate.Candidate
	err error
}

func (m *mockExporter) Candidates(items []candidate.Candidate) ([]byte, error) {
	m.got = items
	if m.err != nil {
		return nil, m.err
	}
	return []byte("xlsx"), nil
}

type mockMail struct {
	msgs  []mailer.Message
	err   error
	limit int
}

func (m *mockMail) Enqueue(_ context.Context, msgs []mailer.Message) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.limit > 0 && len(msgs) > m.limit {
		m.msgs = append(m.msgs, msgs[:m.limit]...)
		return m.limit, mailer.ErrQueueFull
	}
	m.msgs = append(m.msgs, msgs...)
	return len(msgs), nil
}

type change struct {
	kind  string
	actor string
	ids   []string
}

type mockNotifier struct {
	mu      sync.Mutex
	changes []change
}

func (m *mockNotifier) CandidatesChanged(kind, actorID string, ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, change{kind: kind, actor: actorID, ids: ids})
}

var errBoom = errors.New("boom")
