package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/jwt"
)

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      user.User
}

type SessionUsecase interface {
	Users(ctx context.Context) []user.User
	Start(ctx context.Context, userID string) (Session, error)
	Navigation(ctx context.Context, actor user.Actor) []user.NavItem
}

// Sessions lets a caller act as one of the directory users. There is no
// password: picking a user is the whole login.
type Sessions struct {
	users  *user.Directory
	tokens jwt.Service
	logger *log.Logger
}

func NewSessionUsecase(users *user.Directory, tokens jwt.Service, logger *log.Logger) *Sessions {
	if logger == nil {
		logger = log.Default()
	}
	return &Sessions{users: users, tokens: tokens, logger: logger}
}

func (u *Sessions) Users(ctx context.Context) []user.User {
	return u.users.List()
}

func (u *Sessions) Start(ctx context.Context, userID string) (Session, error) {
	if userID == "" {
		return Session{}, ErrInvalidInput
	}
	usr, err := u.users.Find(userID)
	if err != nil {
		if errors.Is(err, user.ErrUnknownUser) {
			return Session{}, ErrNotFound
		}
		return Session{}, ErrInternal
	}

	token, exp, err := u.tokens.Issue(usr.ID, string(usr.Role))
	if err != nil {
		u.logger.Printf("[Session] Token issue failed user=%s: %v", usr.ID, err)
		return Session{}, ErrInternal
	}

	u.logger.Printf("[Session] Started user=%s role=%s", usr.ID, usr.Role)
	return Session{Token: token, ExpiresAt: exp, User: usr}, nil
}

func (u *Sessions) Navigation(ctx context.Context, actor user.Actor) []user.NavItem {
	return user.NavigationFor(actor.Role)
}
