package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/user"
	"hireboard/internal/intake"
)

type IntakeList string

const (
	IntakeSkills IntakeList = "skills"
	IntakeTags   IntakeList = "tags"
)

type IntakeUsecase interface {
	State(ctx context.Context, actor user.Actor) intake.State
	SetFields(ctx context.Context, actor user.Actor, values map[string]string) (intake.State, error)
	AddItem(ctx context.Context, actor user.Actor, list IntakeList, value string) (intake.State, bool, error)
	RemoveItem(ctx context.Context, actor user.Actor, list IntakeList, value string) (intake.State, bool, error)
	Next(ctx context.Context, actor user.Actor) (intake.State, error)
	Previous(ctx context.Context, actor user.Actor) (intake.State, error)
	GoTo(ctx context.Context, actor user.Actor, step int) (intake.State, error)
	Submit(ctx context.Context, actor user.Actor) (candidate.Candidate, intake.State, error)
}

type candidateAdder interface {
	Add(ctx context.Context, actor user.Actor, data candidate.NewCandidate) (candidate.Candidate, error)
}

type intakeSession struct {
	ctrl *intake.Controller

	mu      sync.Mutex
	created candidate.Candidate
}

// Intake keeps one form controller per acting user. Each controller owns
// the draft slot DraftKey(prefix, actor id).
type Intake struct {
	mu       sync.Mutex
	sessions map[string]*intakeSession

	store      intake.DraftStore
	prefix     string
	validator  *intake.Validator
	candidates candidateAdder
	logger     *log.Logger
}

func NewIntakeUsecase(store intake.DraftStore, prefix string, validator *intake.Validator, candidates candidateAdder, logger *log.Logger) *Intake {
	if validator == nil {
		validator = intake.NewValidator()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Intake{
		sessions:   map[string]*intakeSession{},
		store:      store,
		prefix:     prefix,
		validator:  validator,
		candidates: candidates,
		logger:     logger,
	}
}

func (u *Intake) session(ctx context.Context, actor user.Actor) *intakeSession {
	u.mu.Lock()
	defer u.mu.Unlock()

	if s, ok := u.sessions[actor.ID]; ok {
		return s
	}

	s := &intakeSession{}
	s.ctrl = intake.Mount(ctx, intake.Options{
		Store:     u.store,
		Key:       intake.DraftKey(u.prefix, actor.ID),
		Validator: u.validator,
		Logger:    u.logger,
		OnSubmit: func(ctx context.Context, data candidate.NewCandidate) error {
			c, err := u.candidates.Add(ctx, actor, data)
			if err != nil {
				return err
			}
			s.mu.Lock()
			s.created = c
			s.mu.Unlock()
			return nil
		},
	})
	u.sessions[actor.ID] = s
	return s
}

func (u *Intake) State(ctx context.Context, actor user.Actor) intake.State {
	return u.session(ctx, actor).ctrl.State()
}

func (u *Intake) SetFields(ctx context.Context, actor user.Actor, values map[string]string) (intake.State, error) {
	fields := make(map[intake.Field]string, len(values))
	for k, v := range values {
		fields[intake.Field(k)] = v
	}

	ctrl := u.session(ctx, actor).ctrl
	if err := ctrl.SetFields(ctx, fields); err != nil {
		return ctrl.State(), intakeError(err)
	}
	return ctrl.State(), nil
}

func (u *Intake) AddItem(ctx context.Context, actor user.Actor, list IntakeList, value string) (intake.State, bool, error) {
	ctrl := u.session(ctx, actor).ctrl
	var changed bool
	switch list {
	case IntakeSkills:
		changed = ctrl.AddSkill(ctx, value)
	case IntakeTags:
		changed = ctrl.AddTag(ctx, value)
	default:
		return ctrl.State(), false, fmt.Errorf("%w: unknown list %q", ErrInvalidInput, list)
	}
	return ctrl.State(), changed, nil
}

func (u *Intake) RemoveItem(ctx context.Context, actor user.Actor, list IntakeList, value string) (intake.State, bool, error) {
	ctrl := u.session(ctx, actor).ctrl
	var changed bool
	switch list {
	case IntakeSkills:
		changed = ctrl.RemoveSkill(ctx, value)
	case IntakeTags:
		changed = ctrl.RemoveTag(ctx, value)
	default:
		return ctrl.State(), false, fmt.Errorf("%w: unknown list %q", ErrInvalidInput, list)
	}
	return ctrl.State(), changed, nil
}

func (u *Intake) Next(ctx context.Context, actor user.Actor) (intake.State, error) {
	ctrl := u.session(ctx, actor).ctrl
	return ctrl.State(), intakeError(ctrl.Next())
}

func (u *Intake) Previous(ctx context.Context, actor user.Actor) (intake.State, error) {
	ctrl := u.session(ctx, actor).ctrl
	return ctrl.State(), intakeError(ctrl.Previous())
}

func (u *Intake) GoTo(ctx context.Context, actor user.Actor, step int) (intake.State, error) {
	ctrl := u.session(ctx, actor).ctrl
	return ctrl.State(), intakeError(ctrl.GoTo(step))
}

// Submit validates the form and adds the candidate. Validation failures are
// returned as *intake.ValidationError.
func (u *Intake) Submit(ctx context.Context, actor user.Actor) (candidate.Candidate, intake.State, error) {
	s := u.session(ctx, actor)
	if _, err := s.ctrl.Submit(ctx); err != nil {
		return candidate.Candidate{}, s.ctrl.State(), intakeError(err)
	}

	s.mu.Lock()
	created := s.created
	s.mu.Unlock()

	u.logger.Printf("[Intake] Submitted candidate=%s actor=%s", created.ID, actor.ID)
	return created, s.ctrl.State(), nil
}

// intakeError keeps validation errors intact for field-level reporting and
// maps navigation errors to ErrInvalidInput.
func intakeError(err error) error {
	if err == nil {
		return nil
	}
	var verr *intake.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, intake.ErrUnknownField),
		errors.Is(err, intake.ErrLastStep),
		errors.Is(err, intake.ErrFirstStep),
		errors.Is(err, intake.ErrStepOutOfRange),
		errors.Is(err, intake.ErrNotLastStep):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInternal), errors.Is(err, ErrNotFound):
		return err
	default:
		return ErrInternal
	}
}
