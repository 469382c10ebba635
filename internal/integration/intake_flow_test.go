package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"hireboard/internal/app"
	"hireboard/internal/config"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type sessionData struct {
	Token string `json:"token"`
}

type candidateItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	RecruiterID string `json:"recruiterId"`
}

type candidatePage struct {
	Items []candidateItem `json:"items"`
	Total int             `json:"total"`
}

type intakeData struct {
	Current int `json:"current"`
	Values  struct {
		Name   string   `json:"name"`
		Email  string   `json:"email"`
		Skills []string `json:"skills"`
	} `json:"values"`
}

func testConfig() config.Config {
	return config.Config{
		App:     config.AppConfig{AppName: "hireboard-test", Environment: "test", HTTPPort: "0"},
		Session: config.SessionConfig{Secret: "integration-secret", TTL: time.Hour},
		Draft:   config.DraftConfig{Store: config.DraftStoreMemory, Key: "draft-candidate", TTL: time.Hour},
		Board:   config.BoardConfig{Debounce: 0, PageSize: 50},
		Seed:    config.SeedConfig{Candidates: 20, Seed: 7},
		Mail:    config.MailConfig{RatePerSecond: 0, Workers: 1},
	}
}

func bootstrap(t *testing.T, cfg config.Config) *app.App {
	t.Helper()

	a, cleanup, err := app.Bootstrap(context.Background(), cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("cleanup: %v", err)
		}
	})
	return a
}

func call(t *testing.T, a *app.App, method, path, token string, body any) (int, semanticResponse) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Fiber.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out semanticResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, out
}

func decode(t *testing.T, r semanticResponse, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", r.Data, err)
	}
}

func login(t *testing.T, a *app.App, userID string) string {
	t.Helper()

	status, res := call(t, a, http.MethodPost, "/api/v1/session", "", map[string]string{"userId": userID})
	if status != http.StatusCreated {
		t.Fatalf("session: expected 201, got %d (%s)", status, res.Message)
	}
	var s sessionData
	decode(t, res, &s)
	if s.Token == "" {
		t.Fatalf("session: empty token")
	}
	return s.Token
}

func TestIntegration_IntakeSubmit_ThenBulkDeleteAndRestore(t *testing.T) {
	a := bootstrap(t, testConfig())

	if status, _ := call(t, a, http.MethodGet, "/health", "", nil); status != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", status)
	}
	if status, _ := call(t, a, http.MethodGet, "/api/v1/candidates", "", nil); status != http.StatusUnauthorized {
		t.Fatalf("anonymous list: expected 401, got %d", status)
	}

	tok := login(t, a, "user-agency-1")

	status, res := call(t, a, http.MethodGet, "/api/v1/candidates", tok, nil)
	if status != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", status)
	}
	var page candidatePage
	decode(t, res, &page)
	if page.Total != 20 {
		t.Fatalf("expected 20 seeded candidates, got %d", page.Total)
	}

	status, _ = call(t, a, http.MethodPost, "/api/v1/intake/next", tok, nil)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("next on empty form: expected 422, got %d", status)
	}

	status, _ = call(t, a, http.MethodPatch, "/api/v1/intake/fields", tok, map[string]string{
		"name":  "Zelda Integration",
		"email": "zelda@example.com",
	})
	if status != http.StatusOK {
		t.Fatalf("set fields: expected 200, got %d", status)
	}
	for i := 0; i < 2; i++ {
		if status, res = call(t, a, http.MethodPost, "/api/v1/intake/next", tok, nil); status != http.StatusOK {
			t.Fatalf("next %d: expected 200, got %d (%s)", i, status, res.Message)
		}
	}
	if status, _ = call(t, a, http.MethodPost, "/api/v1/intake/skills", tok, map[string]string{"value": "Go"}); status != http.StatusCreated {
		t.Fatalf("add skill: expected 201, got %d", status)
	}
	if status, _ = call(t, a, http.MethodPost, "/api/v1/intake/skills", tok, map[string]string{"value": "Go"}); status != http.StatusOK {
		t.Fatalf("duplicate skill: expected 200, got %d", status)
	}

	status, res = call(t, a, http.MethodPost, "/api/v1/intake/submit", tok, nil)
	if status != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%s)", status, res.Message)
	}
	var submitted struct {
		Candidate candidateItem `json:"candidate"`
	}
	decode(t, res, &submitted)
	if submitted.Candidate.Status != "sourced" || submitted.Candidate.RecruiterID != "user-agency-1" {
		t.Fatalf("unexpected candidate: %+v", submitted.Candidate)
	}

	status, res = call(t, a, http.MethodGet, "/api/v1/candidates?q=zelda", tok, nil)
	if status != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", status)
	}
	decode(t, res, &page)
	if page.Total != 1 || page.Items[0].ID != submitted.Candidate.ID {
		t.Fatalf("expected the new candidate, got %+v", page)
	}

	ids := map[string]any{"ids": []string{submitted.Candidate.ID}}
	if status, _ = call(t, a, http.MethodPost, "/api/v1/candidates/bulk/delete", tok, ids); status != http.StatusConflict {
		t.Fatalf("unconfirmed delete: expected 409, got %d", status)
	}
	confirmed := map[string]any{"ids": []string{submitted.Candidate.ID}, "confirm": true}
	if status, _ = call(t, a, http.MethodPost, "/api/v1/candidates/bulk/delete", tok, confirmed); status != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", status)
	}

	_, res = call(t, a, http.MethodGet, "/api/v1/candidates?q=zelda", tok, nil)
	decode(t, res, &page)
	if page.Total != 0 {
		t.Fatalf("deleted candidate still listed: %+v", page)
	}

	if status, _ = call(t, a, http.MethodPost, "/api/v1/candidates/bulk/restore", tok, ids); status != http.StatusOK {
		t.Fatalf("restore: expected 200, got %d", status)
	}
	_, res = call(t, a, http.MethodGet, "/api/v1/candidates?q=zelda", tok, nil)
	decode(t, res, &page)
	if page.Total != 1 {
		t.Fatalf("restored candidate missing: %+v", page)
	}
}

func TestIntegration_BoardKeepsStatePerActor(t *testing.T) {
	a := bootstrap(t, testConfig())
	agency := login(t, a, "user-agency-1")
	employer := login(t, a, "user-employer-1")

	status, _ := call(t, a, http.MethodPut, "/api/v1/board/query", agency, map[string]any{
		"query": "no-such-candidate",
		"flush": true,
	})
	if status != http.StatusOK {
		t.Fatalf("set query: expected 200, got %d", status)
	}

	var board struct {
		Query string        `json:"query"`
		Page  candidatePage `json:"page"`
	}
	_, res := call(t, a, http.MethodGet, "/api/v1/board", agency, nil)
	decode(t, res, &board)
	if board.Query != "no-such-candidate" || board.Page.Total != 0 {
		t.Fatalf("unexpected agency board: %+v", board)
	}

	_, res = call(t, a, http.MethodGet, "/api/v1/board", employer, nil)
	decode(t, res, &board)
	if board.Query != "" || board.Page.Total != 20 {
		t.Fatalf("employer board should be untouched: query=%q total=%d", board.Query, board.Page.Total)
	}
}

func TestIntegration_SQLiteDraftSurvivesRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Draft.Store = config.DraftStoreSQLite
	cfg.Draft.SQLitePath = filepath.Join(t.TempDir(), "drafts.db")

	first, cleanup, err := app.Bootstrap(context.Background(), cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	tok := login(t, first, "user-employer-1")
	status, _ := call(t, first, http.MethodPatch, "/api/v1/intake/fields", tok, map[string]string{"name": "Draft Person"})
	if status != http.StatusOK {
		t.Fatalf("set fields: expected 200, got %d", status)
	}
	call(t, first, http.MethodPost, "/api/v1/intake/tags", tok, map[string]string{"value": "urgent"})
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	second := bootstrap(t, cfg)
	tok = login(t, second, "user-employer-1")
	status, res := call(t, second, http.MethodGet, "/api/v1/intake", tok, nil)
	if status != http.StatusOK {
		t.Fatalf("intake state: expected 200, got %d", status)
	}
	var st intakeData
	decode(t, res, &st)
	if st.Values.Name != "Draft Person" {
		t.Fatalf("draft not restored: %+v", st.Values)
	}

	// a different user has a separate draft slot
	other := login(t, second, "user-agency-1")
	_, res = call(t, second, http.MethodGet, "/api/v1/intake", other, nil)
	decode(t, res, &st)
	if st.Values.Name != "" {
		t.Fatalf("draft leaked across users: %+v", st.Values)
	}
}
