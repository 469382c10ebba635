package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/jwt"
)

type mockTokens struct {
	err error
}

func (m mockTokens) Issue(userID, role string) (string, time.Time, error) {
	if m.err != nil {
		return "", time.Time{}, m.err
	}
	return "token-" + userID, time.Unix(0, 0), nil
}

func (m mockTokens) Validate(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

func TestSessions_Start(t *testing.T) {
	u := NewSessionUsecase(user.DefaultDirectory(), mockTokens{}, quietLogger())
	ctx := context.Background()

	s, err := u.Start(ctx, "user-employer-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Token != "token-user-employer-1" || s.User.Role != user.RoleEmployerRecruiter {
		t.Fatalf("unexpected session: %+v", s)
	}

	if _, err := u.Start(ctx, "user-nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := u.Start(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSessions_TokenFailure(t *testing.T) {
	u := NewSessionUsecase(user.DefaultDirectory(), mockTokens{err: jwt.ErrTokenInvalid}, quietLogger())
	if _, err := u.Start(context.Background(), "user-admin"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSessions_NavigationByRole(t *testing.T) {
	u := NewSessionUsecase(user.DefaultDirectory(), mockTokens{}, quietLogger())
	if n := len(u.Navigation(context.Background(), admin())); n != 7 {
		t.Fatalf("expected 7 admin items, got %d", n)
	}
	if n := len(u.Navigation(context.Background(), agencyRecruiter())); n != 6 {
		t.Fatalf("expected 6 agency items, got %d", n)
	}
}
