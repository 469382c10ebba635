package middleware

import (
	"errors"
	"strings"

	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxActorKey = "actor"

// UserFinder resolves a user id from a session token.
type UserFinder interface {
	Find(id string) (user.User, error)
}

// ActorMiddleware resolves the session token to the acting user and stores
// it in Locals under CtxActorKey.
type ActorMiddleware struct {
	jwt   jwt.Service
	users UserFinder
}

func NewActorMiddleware(jwtSvc jwt.Service, users UserFinder) *ActorMiddleware {
	return &ActorMiddleware{jwt: jwtSvc, users: users}
}

func (m *ActorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			// browsers cannot set headers on websocket upgrades
			token = strings.TrimSpace(c.Query("token"))
			ok = token != ""
		}
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.Validate(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Session expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid session", nil, err)
		}

		u, err := m.users.Find(claims.UserID)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid session", nil, err)
		}

		c.Locals(CtxActorKey, user.Actor{User: u})
		return c.Next()
	}
}

// ActorFrom returns the actor stored by ActorMiddleware.
func ActorFrom(c fiber.Ctx) (user.Actor, bool) {
	a, ok := c.Locals(CtxActorKey).(user.Actor)
	return a, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
