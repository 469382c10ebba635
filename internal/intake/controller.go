package intake

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"hireboard/internal/domain/candidate"
)

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrLastStep       = errors.New("already on the last step")
	ErrFirstStep      = errors.New("already on the first step")
	ErrStepOutOfRange = errors.New("step out of range")
	ErrNotLastStep    = errors.New("submit is only available on the last step")
)

// SubmitFunc receives the validated record. A non-nil error aborts the
// submit and leaves the form and its draft untouched.
type SubmitFunc func(ctx context.Context, data candidate.NewCandidate) error

type Options struct {
	Store     DraftStore
	Key       string
	Validator *Validator
	Logger    *log.Logger
	OnSubmit  SubmitFunc
}

type Controller struct {
	mu sync.Mutex

	key       string
	store     DraftStore
	validator *Validator
	logger    *log.Logger
	onSubmit  SubmitFunc

	data      candidate.NewCandidate
	current   int
	completed map[int]bool
	errs      map[Field]string
}

type StepState struct {
	Step
	Index  int
	Status StepStatus
}

type State struct {
	Current int
	Steps   []StepState
	Values  candidate.NewCandidate
	Errors  map[Field]string
}

// Mount builds a controller and restores the draft stored under opts.Key.
// An unreadable or malformed draft is logged and ignored.
func Mount(ctx context.Context, opts Options) *Controller {
	c := &Controller{
		key:       opts.Key,
		store:     opts.Store,
		validator: opts.Validator,
		logger:    opts.Logger,
		onSubmit:  opts.OnSubmit,
		data:      emptyDraft(),
		completed: map[int]bool{},
		errs:      map[Field]string{},
	}
	if c.key == "" {
		c.key = DefaultDraftKey
	}
	if c.validator == nil {
		c.validator = NewValidator()
	}
	if c.logger == nil {
		c.logger = log.Default()
	}

	c.restore(ctx)
	return c
}

func (c *Controller) restore(ctx context.Context) {
	if c.store == nil {
		return
	}

	b, ok, err := c.store.Load(ctx, c.key)
	if err != nil {
		c.logger.Printf("[Intake] Draft load failed key=%s: %v", c.key, err)
		return
	}
	if !ok || len(b) == 0 {
		return
	}

	d, err := decodeDraft(b)
	if err != nil {
		c.logger.Printf("[Intake] Discarding malformed draft key=%s: %v", c.key, err)
		return
	}
	c.data = d
}

func (c *Controller) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	b, err := encodeDraft(c.data)
	if err != nil {
		c.logger.Printf("[Intake] Draft encode failed key=%s: %v", c.key, err)
		return
	}
	if err := c.store.Save(ctx, c.key, b); err != nil {
		c.logger.Printf("[Intake] Draft save failed key=%s: %v", c.key, err)
	}
}

func (c *Controller) SetField(ctx context.Context, f Field, value string) error {
	return c.SetFields(ctx, map[Field]string{f: value})
}

// SetFields applies several scalar fields with a single autosave. Nothing
// is applied when any name is unknown.
func (c *Controller) SetFields(ctx context.Context, values map[Field]string) error {
	for f := range values {
		if !scalarFields[f] {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for f, v := range values {
		switch f {
		case FieldName:
			c.data.Name = v
		case FieldEmail:
			c.data.Email = v
		case FieldPhone:
			c.data.Phone = v
		case FieldLocation:
			c.data.Location = v
		case FieldLinkedInURL:
			c.data.LinkedInURL = v
		case FieldNotes:
			c.data.Notes = v
		}
		delete(c.errs, f)
	}

	c.persist(ctx)
	return nil
}

func (c *Controller) AddSkill(ctx context.Context, skill string) bool {
	return c.addItem(ctx, &c.data.Skills, skill)
}

func (c *Controller) RemoveSkill(ctx context.Context, skill string) bool {
	return c.removeItem(ctx, &c.data.Skills, skill)
}

func (c *Controller) AddTag(ctx context.Context, tag string) bool {
	return c.addItem(ctx, &c.data.Tags, tag)
}

func (c *Controller) RemoveTag(ctx context.Context, tag string) bool {
	return c.removeItem(ctx, &c.data.Tags, tag)
}

// addItem appends the trimmed value unless it is blank or already present
// with the exact same spelling.
func (c *Controller) addItem(ctx context.Context, list *[]string, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range *list {
		if v == value {
			return false
		}
	}
	*list = append(append([]string{}, *list...), value)
	c.persist(ctx)
	return true
}

func (c *Controller) removeItem(ctx context.Context, list *[]string, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(*list))
	for _, v := range *list {
		if v != value {
			out = append(out, v)
		}
	}
	if len(out) == len(*list) {
		return false
	}
	*list = out
	c.persist(ctx)
	return true
}

// Next validates the current step only. On success the step is marked
// completed and the form advances.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current >= len(Steps)-1 {
		return ErrLastStep
	}
	if verr := c.validateStep(c.current); verr != nil {
		return verr
	}
	c.current++
	return nil
}

// Previous never revalidates and keeps completed steps completed.
func (c *Controller) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == 0 {
		return ErrFirstStep
	}
	c.current--
	return nil
}

// GoTo jumps to step i. Moving forward validates every step on the way, as
// repeated Next calls would, and stops at the first step that fails.
func (c *Controller) GoTo(i int) error {
	if i < 0 || i >= len(Steps) {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, i)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i <= c.current {
		c.current = i
		return nil
	}
	for c.current < i {
		if verr := c.validateStep(c.current); verr != nil {
			return verr
		}
		c.current++
	}
	return nil
}

func (c *Controller) validateStep(i int) *ValidationError {
	verr := c.validator.Check(c.data, Steps[i].Fields...)
	if verr != nil {
		c.errs = verr.Fields
		return verr
	}
	c.errs = map[Field]string{}
	c.completed[i] = true
	return nil
}

// Submit validates the whole record and is only allowed from the last
// step. On success the record goes to the submit callback, the draft is
// deleted and the form starts over. On failure the form stays on the last
// step with the field errors set.
func (c *Controller) Submit(ctx context.Context) (candidate.NewCandidate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != len(Steps)-1 {
		return candidate.NewCandidate{}, ErrNotLastStep
	}
	if verr := c.validator.Check(c.data); verr != nil {
		c.errs = verr.Fields
		return candidate.NewCandidate{}, verr
	}

	out := cloneDraft(c.data)
	if c.onSubmit != nil {
		if err := c.onSubmit(ctx, out); err != nil {
			return candidate.NewCandidate{}, err
		}
	}

	if c.store != nil {
		if err := c.store.Delete(ctx, c.key); err != nil {
			c.logger.Printf("[Intake] Draft delete failed key=%s: %v", c.key, err)
		}
	}

	c.data = emptyDraft()
	c.current = 0
	c.completed = map[int]bool{}
	c.errs = map[Field]string{}
	return out, nil
}

// StepStatus reports completed before active, so a revisited step keeps
// showing as completed.
func (c *Controller) StepStatus(i int) StepStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepStatus(i)
}

func (c *Controller) stepStatus(i int) StepStatus {
	switch {
	case c.completed[i]:
		return StepCompleted
	case i == c.current:
		return StepActive
	default:
		return StepPending
	}
}

func (c *Controller) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) Values() candidate.NewCandidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneDraft(c.data)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	steps := make([]StepState, 0, len(Steps))
	for i, s := range Steps {
		steps = append(steps, StepState{Step: s, Index: i, Status: c.stepStatus(i)})
	}
	errs := make(map[Field]string, len(c.errs))
	for k, v := range c.errs {
		errs[k] = v
	}
	return State{
		Current: c.current,
		Steps:   steps,
		Values:  cloneDraft(c.data),
		Errors:  errs,
	}
}
