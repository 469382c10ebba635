package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/user"
	"hireboard/internal/infrastructure/mailer"
	"hireboard/internal/intake"
	"hireboard/internal/repository"
	"hireboard/internal/ws"

	"github.com/google/uuid"
)

type CandidateExporter interface {
	Candidates(items []candidate.Candidate) ([]byte, error)
}

type MailQueue interface {
	Enqueue(ctx context.Context, msgs []mailer.Message) (int, error)
}

type ChangeNotifier interface {
	CandidatesChanged(change, actorID string, ids []string)
}

type EmailParams struct {
	IDs     []string
	Subject string
	Body    string
}

type CandidateUsecase interface {
	List(ctx context.Context, actor user.Actor, params ListParams) (Page[candidate.Candidate], error)
	Add(ctx context.Context, actor user.Actor, data candidate.NewCandidate) (candidate.Candidate, error)
	BulkDelete(ctx context.Context, actor user.Actor, ids []string, confirm bool) ([]string, error)
	Restore(ctx context.Context, actor user.Actor, ids []string) ([]string, error)
	Export(ctx context.Context, actor user.Actor, ids []string) ([]byte, int, error)
	Email(ctx context.Context, actor user.Actor, params EmailParams) (int, error)
}

type Candidates struct {
	store     *repository.Collection[candidate.Candidate]
	validator *intake.Validator
	exporter  CandidateExporter
	mail      MailQueue
	notifier  ChangeNotifier
	pageSize  int
	logger    *log.Logger

	now   func() time.Time
	newID func() string
}

func NewCandidateUsecase(store *repository.Collection[candidate.Candidate], validator *intake.Validator, exporter CandidateExporter, mail MailQueue, notifier ChangeNotifier, pageSize int, logger *log.Logger) *Candidates {
	if validator == nil {
		validator = intake.NewValidator()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Candidates{
		store:     store,
		validator: validator,
		exporter:  exporter,
		mail:      mail,
		notifier:  notifier,
		pageSize:  pageSize,
		logger:    logger,
		now:       time.Now,
		newID:     func() string { return "candidate-" + uuid.NewString() },
	}
}

func (u *Candidates) List(ctx context.Context, actor user.Actor, params ListParams) (Page[candidate.Candidate], error) {
	q, err := params.query(u.pageSize)
	if err != nil {
		return Page[candidate.Candidate]{}, err
	}
	page, _, err := listPage(CandidateDescriptor, u.store.Snapshot(), q)
	return page, err
}

// Add validates data like the intake submit does and prepends the new
// record, owned by the acting user, with status sourced.
func (u *Candidates) Add(ctx context.Context, actor user.Actor, data candidate.NewCandidate) (candidate.Candidate, error) {
	if verr := u.validator.Check(data); verr != nil {
		return candidate.Candidate{}, verr
	}

	now := u.now().UTC()
	c := candidate.Candidate{
		ID:               u.newID(),
		Name:             strings.TrimSpace(data.Name),
		Email:            strings.TrimSpace(data.Email),
		Phone:            optional(data.Phone),
		Location:         optional(data.Location),
		LinkedInURL:      optional(data.LinkedInURL),
		Notes:            optional(data.Notes),
		Status:           candidate.StatusSourced,
		Tags:             cleanList(data.Tags),
		Skills:           cleanList(data.Skills),
		AddedAt:          &now,
		RecruiterID:      actor.ID,
		RecruiterName:    actor.Name,
		OrganizationID:   actor.OrganizationID,
		OrganizationName: actor.OrganizationName,
	}

	if err := u.store.Prepend(c); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			u.logger.Printf("[Candidates] Duplicate id on add id=%s", c.ID)
		}
		return candidate.Candidate{}, ErrInternal
	}

	u.logger.Printf("[Candidates] Added id=%s actor=%s", c.ID, actor.ID)
	u.notify(ws.ChangeAdded, actor, []string{c.ID})
	return c, nil
}

// BulkDelete soft-deletes ids. Without confirm nothing happens.
func (u *Candidates) BulkDelete(ctx context.Context, actor user.Actor, ids []string, confirm bool) ([]string, error) {
	ids = cleanList(ids)
	if len(ids) == 0 {
		return nil, ErrInvalidInput
	}
	if !confirm {
		return nil, ErrConfirmationRequired
	}

	removed := idsOf(u.store.Remove(ids))
	if len(removed) == 0 {
		return nil, ErrNotFound
	}

	u.logger.Printf("[Candidates] Deleted count=%d actor=%s", len(removed), actor.ID)
	u.notify(ws.ChangeDeleted, actor, removed)
	return removed, nil
}

func (u *Candidates) Restore(ctx context.Context, actor user.Actor, ids []string) ([]string, error) {
	ids = cleanList(ids)
	if len(ids) == 0 {
		return nil, ErrInvalidInput
	}

	restored := idsOf(u.store.Restore(ids))
	if len(restored) == 0 {
		return nil, ErrNotFound
	}

	u.logger.Printf("[Candidates] Restored count=%d actor=%s", len(restored), actor.ID)
	u.notify(ws.ChangeRestored, actor, restored)
	return restored, nil
}

func (u *Candidates) Export(ctx context.Context, actor user.Actor, ids []string) ([]byte, int, error) {
	if u.exporter == nil {
		return nil, 0, ErrInternal
	}
	items, err := u.pick(ids)
	if err != nil {
		return nil, 0, err
	}

	b, err := u.exporter.Candidates(items)
	if err != nil {
		u.logger.Printf("[Candidates] Export failed actor=%s: %v", actor.ID, err)
		return nil, 0, ErrInternal
	}
	return b, len(items), nil
}

// Email queues one message per selected candidate and returns how many
// were queued.
func (u *Candidates) Email(ctx context.Context, actor user.Actor, params EmailParams) (int, error) {
	if u.mail == nil {
		return 0, ErrInternal
	}
	subject := strings.TrimSpace(params.Subject)
	if subject == "" {
		return 0, ErrInvalidInput
	}
	items, err := u.pick(params.IDs)
	if err != nil {
		return 0, err
	}

	msgs := make([]mailer.Message, 0, len(items))
	for _, c := range items {
		msgs = append(msgs, mailer.Message{
			To:      c.Email,
			Name:    c.Name,
			Subject: subject,
			Body:    params.Body,
		})
	}

	n, err := u.mail.Enqueue(ctx, msgs)
	if err != nil {
		u.logger.Printf("[Candidates] Email queue failed queued=%d actor=%s: %v", n, actor.ID, err)
		if n == 0 {
			return 0, ErrInternal
		}
	}
	u.logger.Printf("[Candidates] Email queued count=%d actor=%s", n, actor.ID)
	return n, nil
}

func (u *Candidates) pick(ids []string) ([]candidate.Candidate, error) {
	ids = cleanList(ids)
	if len(ids) == 0 {
		return nil, ErrInvalidInput
	}
	items := u.store.Pick(ids)
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func (u *Candidates) notify(change string, actor user.Actor, ids []string) {
	if u.notifier != nil {
		u.notifier.CandidatesChanged(change, actor.ID, ids)
	}
}

func idsOf(items []candidate.Candidate) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// cleanList trims values and drops blanks and exact duplicates.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
