package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hireboard/internal/domain/candidate"
	"hireboard/internal/intake"
	"hireboard/internal/listview"
	"hireboard/internal/ws"
)

func newCandidates(t *testing.T) (*Candidates, *mockExporter, *mockMail, *mockNotifier) {
	t.Helper()
	exp := &mockExporter{}
	mail := &mockMail{}
	notif := &mockNotifier{}
	uc := NewCandidateUsecase(candidateStore(), nil, exp, mail, notif, 50, quietLogger())
	uc.now = func() time.Time { return time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC) }
	uc.newID = func() string { return "candidate-new" }
	return uc, exp, mail, notif
}

func TestCandidateUsecase_ListStatusFacet(t *testing.T) {
	uc, _, _, _ := newCandidates(t)

	page, err := uc.List(context.Background(), admin(), ListParams{Facets: map[string][]string{"status": {"hired"}}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("expected 2 hired, got %d", page.Total)
	}
	// default sort is addedAt desc
	if page.Items[0].ID != "c2" || page.Items[1].ID != "c3" {
		t.Fatalf("unexpected order: %s, %s", page.Items[0].ID, page.Items[1].ID)
	}
}

func TestCandidateUsecase_ListDefaultSortNilLast(t *testing.T) {
	uc, _, _, _ := newCandidates(t)

	page, err := uc.List(context.Background(), admin(), ListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := idsOf(page.Items)
	want := []string{"c2", "c3", "c1", "c4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCandidateUsecase_ListDirectionOnDefaultSort(t *testing.T) {
	uc, _, _, _ := newCandidates(t)

	page, err := uc.List(context.Background(), admin(), ListParams{Direction: "asc"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Sort.Field != "addedAt" || page.Sort.Direction != listview.Asc {
		t.Fatalf("expected addedAt asc, got %+v", page.Sort)
	}
	got := idsOf(page.Items)
	want := []string{"c1", "c3", "c2", "c4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCandidateUsecase_ListInvalidInput(t *testing.T) {
	uc, _, _, _ := newCandidates(t)
	ctx := context.Background()

	cases := []ListParams{
		{Limit: -1},
		{Limit: maxPageSize + 1},
		{Offset: -1},
		{Sort: "salary"},
		{Sort: "name", Direction: "sideways"},
		{Direction: "sideways"},
		{Facets: map[string][]string{"color": {"red"}}},
	}
	for _, p := range cases {
		if _, err := uc.List(ctx, admin(), p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("params %+v: expected ErrInvalidInput, got %v", p, err)
		}
	}
}

func TestCandidateUsecase_AddPrependsSourced(t *testing.T) {
	uc, _, _, notif := newCandidates(t)
	actor := agencyRecruiter()

	c, err := uc.Add(context.Background(), actor, candidate.NewCandidate{
		Name:   " Barbara Liskov ",
		Email:  "barbara@example.com",
		Skills: []string{"CLU", " CLU ", ""},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Status != candidate.StatusSourced || c.RecruiterID != actor.ID || c.OrganizationName != actor.OrganizationName {
		t.Fatalf("unexpected candidate: %+v", c)
	}
	if c.Name != "Barbara Liskov" || len(c.Skills) != 1 || c.Phone != nil {
		t.Fatalf("expected normalized fields, got %+v", c)
	}
	if first := uc.store.Snapshot()[0]; first.ID != "candidate-new" {
		t.Fatalf("expected new candidate first, got %s", first.ID)
	}
	if len(notif.changes) != 1 || notif.changes[0].kind != ws.ChangeAdded {
		t.Fatalf("expected one added notification, got %+v", notif.changes)
	}
}

func TestCandidateUsecase_AddInvalid(t *testing.T) {
	uc, _, _, notif := newCandidates(t)

	_, err := uc.Add(context.Background(), admin(), candidate.NewCandidate{Name: "X", Email: "nope"})
	var verr *intake.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields[intake.FieldEmail]; !ok {
		t.Fatalf("expected email error, got %v", verr.Fields)
	}
	if uc.store.Len() != 4 || len(notif.changes) != 0 {
		t.Fatalf("invalid add must not change the collection")
	}
}

func TestCandidateUsecase_AddBlankName(t *testing.T) {
	uc, _, _, notif := newCandidates(t)

	_, err := uc.Add(context.Background(), admin(), candidate.NewCandidate{Name: "   ", Email: "a@b.co"})
	var verr *intake.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := verr.Fields[intake.FieldName]; got != "Name is required" {
		t.Fatalf("expected name required, got %q", got)
	}
	if uc.store.Len() != 4 || len(notif.changes) != 0 {
		t.Fatalf("blank name must not be stored")
	}
}

func TestCandidateUsecase_BulkDeleteRequiresConfirm(t *testing.T) {
	uc, _, _, _ := newCandidates(t)
	ctx := context.Background()

	if _, err := uc.BulkDelete(ctx, admin(), []string{"c1"}, false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if uc.store.Len() != 4 {
		t.Fatalf("unconfirmed delete must not remove anything")
	}
	if _, err := uc.BulkDelete(ctx, admin(), nil, true); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCandidateUsecase_DeleteAndRestore(t *testing.T) {
	uc, _, _, notif := newCandidates(t)
	ctx := context.Background()

	removed, err := uc.BulkDelete(ctx, admin(), []string{"c1", "c3", "missing"}, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(removed) != 2 || uc.store.Len() != 2 {
		t.Fatalf("expected 2 removed, got %v (len=%d)", removed, uc.store.Len())
	}

	restored, err := uc.Restore(ctx, admin(), []string{"c3"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(restored) != 1 || uc.store.Len() != 3 {
		t.Fatalf("expected c3 restored, got %v", restored)
	}
	if _, err := uc.Restore(ctx, admin(), []string{"c3"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second restore, got %v", err)
	}

	if len(notif.changes) != 2 || notif.changes[0].kind != ws.ChangeDeleted || notif.changes[1].kind != ws.ChangeRestored {
		t.Fatalf("unexpected notifications: %+v", notif.changes)
	}
}

func TestCandidateUsecase_Export(t *testing.T) {
	uc, exp, _, _ := newCandidates(t)

	b, n, err := uc.Export(context.Background(), admin(), []string{"c2", "c1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(b) != "xlsx" || n != 2 || len(exp.got) != 2 {
		t.Fatalf("unexpected export: %q n=%d", b, n)
	}

	exp.err = errBoom
	if _, _, err := uc.Export(context.Background(), admin(), []string{"c1"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if _, _, err := uc.Export(context.Background(), admin(), []string{"missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCandidateUsecase_Email(t *testing.T) {
	uc, _, mail, _ := newCandidates(t)
	ctx := context.Background()

	if _, err := uc.Email(ctx, admin(), EmailParams{IDs: []string{"c1"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without subject, got %v", err)
	}

	n, err := uc.Email(ctx, admin(), EmailParams{IDs: []string{"c1", "c2"}, Subject: "Hello", Body: "Hi"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 2 || len(mail.msgs) != 2 || mail.msgs[0].To != "ada@example.com" {
		t.Fatalf("unexpected messages: %+v", mail.msgs)
	}

	mail.msgs, mail.limit = nil, 1
	n, err = uc.Email(ctx, admin(), EmailParams{IDs: []string{"c1", "c2"}, Subject: "Hello"})
	if err != nil || n != 1 || len(mail.msgs) != 1 {
		t.Fatalf("expected a partial queue of 1, got n=%d err=%v", n, err)
	}

	mail.err = errBoom
	if _, err := uc.Email(ctx, admin(), EmailParams{IDs: []string{"c1"}, Subject: "Hello"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
