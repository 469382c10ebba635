package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

var testActor = user.Actor{User: user.User{
	ID:               "user-agency-1",
	Name:             "Sarah Johnson",
	Role:             user.RoleAgencyRecruiter,
	OrganizationID:   "agency-1",
	OrganizationName: "TechTalent Recruiting",
}}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestApp mounts routes behind the error middleware. When withActor is
// set every request acts as testActor.
func newTestApp(withActor bool, register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	if withActor {
		app.Use(func(c fiber.Ctx) error {
			c.Locals(middleware.CtxActorKey, testActor)
			return c.Next()
		})
	}
	register(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	_ = resp.Body.Close()

	var env envelope
	if bytes.HasPrefix(raw, []byte("{")) {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode envelope %q: %v", raw, err)
		}
	}
	return resp, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func strptr(s string) *string { return &s }

func sampleCandidate() candidate.Candidate {
	added := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return candidate.Candidate{
		ID:               "candidate-1",
		Name:             "Alice Chen",
		Email:            "alice@example.com",
		Location:         strptr("Austin, TX"),
		Status:           candidate.StatusSourced,
		Skills:           []string{"Go"},
		AddedAt:          &added,
		RecruiterID:      testActor.ID,
		RecruiterName:    testActor.Name,
		OrganizationID:   testActor.OrganizationID,
		OrganizationName: testActor.OrganizationName,
	}
}

var errBoom = errors.New("boom")
