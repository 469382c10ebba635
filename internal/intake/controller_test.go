package intake

import (
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"sync"
	"testing"

	"hireboard/internal/domain/candidate"
)

type memStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves int
	err   error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, false, m.err
	}
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *memStore) Save(_ context.Context, key string, b []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.data[key] = append([]byte(nil), b...)
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func mount(store DraftStore, onSubmit SubmitFunc) *Controller {
	return Mount(context.Background(), Options{
		Store:    store,
		Key:      "draft-candidate:test",
		Logger:   quietLogger(),
		OnSubmit: onSubmit,
	})
}

func fillValid(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	err := c.SetFields(ctx, map[Field]string{
		FieldName:        "Ada Lovelace",
		FieldEmail:       "ada@example.com",
		FieldPhone:       "+1-555-010-0000",
		FieldLocation:    "London, UK",
		FieldLinkedInURL: "https://linkedin.com/in/ada-lovelace",
		FieldNotes:       "Analytical engine",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	c.AddSkill(ctx, "Go")
	c.AddSkill(ctx, "PostgreSQL")
	c.AddTag(ctx, "Senior")
}

func toLastStep(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.GoTo(len(Steps) - 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestController_NextValidatesCurrentStepOnly(t *testing.T) {
	c := mount(nil, nil)

	err := c.Next()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields[FieldName]; !ok {
		t.Fatalf("expected name error, got %v", verr.Fields)
	}
	if c.Current() != 0 {
		t.Fatalf("expected to stay on step 0")
	}

	ctx := context.Background()
	_ = c.SetField(ctx, FieldName, "Ada")
	_ = c.SetField(ctx, FieldEmail, "ada@example.com")
	_ = c.SetField(ctx, FieldLinkedInURL, "not a url")

	if err := c.Next(); err != nil {
		t.Fatalf("step 0 should pass regardless of later fields: %v", err)
	}
	if c.StepStatus(0) != StepCompleted || c.StepStatus(1) != StepActive || c.StepStatus(2) != StepPending {
		t.Fatalf("unexpected statuses: %v %v %v", c.StepStatus(0), c.StepStatus(1), c.StepStatus(2))
	}

	err = c.Next()
	if !errors.As(err, &verr) || verr.Fields[FieldLinkedInURL] == "" {
		t.Fatalf("expected linkedin error, got %v", err)
	}
}

func TestController_PreviousKeepsCompletion(t *testing.T) {
	c := mount(nil, nil)
	if err := c.Previous(); !errors.Is(err, ErrFirstStep) {
		t.Fatalf("expected ErrFirstStep, got %v", err)
	}

	fillValid(t, c)
	if err := c.Next(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_ = c.SetField(context.Background(), FieldEmail, "broken")

	if err := c.Previous(); err != nil {
		t.Fatalf("previous must not revalidate: %v", err)
	}
	if c.Current() != 0 || c.StepStatus(0) != StepCompleted {
		t.Fatalf("expected step 0 still completed, got current=%d status=%s", c.Current(), c.StepStatus(0))
	}
}

func TestController_LastStepHasNoNext(t *testing.T) {
	c := mount(nil, nil)
	fillValid(t, c)
	if err := c.GoTo(2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := c.Next(); !errors.Is(err, ErrLastStep) {
		t.Fatalf("expected ErrLastStep, got %v", err)
	}
}

func TestController_GoToIsGatedLikeNext(t *testing.T) {
	c := mount(nil, nil)
	ctx := context.Background()

	if err := c.GoTo(2); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if c.Current() != 0 {
		t.Fatalf("expected to stay on step 0, got %d", c.Current())
	}

	_ = c.SetField(ctx, FieldName, "Ada")
	_ = c.SetField(ctx, FieldEmail, "ada@example.com")
	_ = c.SetField(ctx, FieldLinkedInURL, "nope")

	if err := c.GoTo(2); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error on step 1, got %v", err)
	}
	if c.Current() != 1 {
		t.Fatalf("expected to stop on step 1, got %d", c.Current())
	}

	_ = c.SetField(ctx, FieldLinkedInURL, "")
	if err := c.GoTo(2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := c.GoTo(0); err != nil {
		t.Fatalf("backward jump must be allowed: %v", err)
	}
	if err := c.GoTo(7); !errors.Is(err, ErrStepOutOfRange) {
		t.Fatalf("expected ErrStepOutOfRange, got %v", err)
	}
}

func TestController_SubmitInvalidEmail(t *testing.T) {
	called := false
	c := mount(newMemStore(), func(context.Context, candidate.NewCandidate) error {
		called = true
		return nil
	})
	fillValid(t, c)
	toLastStep(t, c)
	_ = c.SetField(context.Background(), FieldEmail, "not-an-email")

	_, err := c.Submit(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields[FieldEmail] == "" {
		t.Fatalf("expected email error, got %v", verr.Fields)
	}
	if called {
		t.Fatalf("submit callback must not run")
	}
	if c.Current() != len(Steps)-1 {
		t.Fatalf("expected last step, got %d", c.Current())
	}
	if c.State().Errors[FieldEmail] == "" {
		t.Fatalf("expected email error in state")
	}
}

func TestController_SubmitBlankName(t *testing.T) {
	called := false
	c := mount(nil, func(context.Context, candidate.NewCandidate) error {
		called = true
		return nil
	})
	fillValid(t, c)
	toLastStep(t, c)
	_ = c.SetField(context.Background(), FieldName, "   ")

	_, err := c.Submit(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := verr.Fields[FieldName]; got != "Name is required" {
		t.Fatalf("expected name required, got %q", got)
	}
	if called {
		t.Fatalf("submit callback must not run")
	}
}

func TestController_SubmitOnlyFromLastStep(t *testing.T) {
	called := false
	c := mount(newMemStore(), func(context.Context, candidate.NewCandidate) error {
		called = true
		return nil
	})
	fillValid(t, c)

	if _, err := c.Submit(context.Background()); !errors.Is(err, ErrNotLastStep) {
		t.Fatalf("expected ErrNotLastStep, got %v", err)
	}
	if called {
		t.Fatalf("submit callback must not run")
	}
	if c.Current() != 0 || c.StepStatus(0) != StepActive || c.StepStatus(1) != StepPending {
		t.Fatalf("form must stay where it was, got current=%d", c.Current())
	}
	if c.Values().Name == "" {
		t.Fatalf("values must be kept")
	}

	toLastStep(t, c)
	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !called {
		t.Fatalf("expected callback on the last step")
	}
}

func TestController_SubmitSuccessResets(t *testing.T) {
	store := newMemStore()
	var got candidate.NewCandidate
	c := mount(store, func(_ context.Context, d candidate.NewCandidate) error {
		got = d
		return nil
	})
	fillValid(t, c)
	toLastStep(t, c)

	out, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Email != "ada@example.com" || !reflect.DeepEqual(out, got) {
		t.Fatalf("callback got %+v, returned %+v", got, out)
	}
	if c.Current() != 0 || c.StepStatus(0) != StepActive || c.StepStatus(1) != StepPending {
		t.Fatalf("expected reset to step 0 with nothing completed")
	}
	if _, ok := store.data["draft-candidate:test"]; ok {
		t.Fatalf("draft should be deleted")
	}

	again := mount(store, nil)
	if v := again.Values(); v.Name != "" || len(v.Skills) != 0 || len(v.Tags) != 0 {
		t.Fatalf("expected empty form after remount, got %+v", v)
	}
}

func TestController_SubmitCallbackFailureKeepsDraft(t *testing.T) {
	store := newMemStore()
	boom := errors.New("boom")
	c := mount(store, func(context.Context, candidate.NewCandidate) error { return boom })
	fillValid(t, c)
	toLastStep(t, c)

	if _, err := c.Submit(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if c.Values().Name == "" {
		t.Fatalf("values must be kept")
	}
	if _, ok := store.data["draft-candidate:test"]; !ok {
		t.Fatalf("draft must be kept")
	}
}

func TestController_DraftRoundTrip(t *testing.T) {
	store := newMemStore()
	c := mount(store, nil)
	fillValid(t, c)
	want := c.Values()

	remounted := mount(store, nil)
	if got := remounted.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("draft not restored verbatim:\n got  %+v\n want %+v", got, want)
	}
}

func TestController_MalformedDraftIgnored(t *testing.T) {
	store := newMemStore()
	store.data["draft-candidate:test"] = []byte("{not json")

	c := mount(store, nil)
	if v := c.Values(); v.Name != "" || v.Email != "" {
		t.Fatalf("expected empty form, got %+v", v)
	}

	store.err = errors.New("unavailable")
	c = mount(store, nil)
	if err := c.SetField(context.Background(), FieldName, "Ada"); err != nil {
		t.Fatalf("store failures must not surface: %v", err)
	}
}

func TestController_SkillsAndTags(t *testing.T) {
	c := mount(newMemStore(), nil)
	ctx := context.Background()

	if !c.AddSkill(ctx, "  Go ") {
		t.Fatalf("expected skill added")
	}
	if c.AddSkill(ctx, "Go") {
		t.Fatalf("duplicate must be ignored")
	}
	if !c.AddSkill(ctx, "go") {
		t.Fatalf("case differs, expected added")
	}
	if c.AddSkill(ctx, "   ") {
		t.Fatalf("blank must be ignored")
	}
	if got := c.Values().Skills; !reflect.DeepEqual(got, []string{"Go", "go"}) {
		t.Fatalf("unexpected skills %v", got)
	}

	c.AddTag(ctx, "Remote")
	if !c.RemoveTag(ctx, "Remote") || c.RemoveTag(ctx, "Remote") {
		t.Fatalf("unexpected remove result")
	}
	if !c.RemoveSkill(ctx, "go") {
		t.Fatalf("expected skill removed")
	}
}

func TestController_SetFieldsRejectsUnknown(t *testing.T) {
	c := mount(nil, nil)
	err := c.SetFields(context.Background(), map[Field]string{FieldName: "Ada", "salary": "1"})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if c.Values().Name != "" {
		t.Fatalf("nothing should be applied")
	}
	if err := c.SetField(context.Background(), FieldTags, "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("tags are list fields, got %v", err)
	}
}
