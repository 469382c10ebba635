package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/user"
	"hireboard/internal/listview"
	"hireboard/internal/repository"
)

// BoardQuery replaces the board's facets, range and page. A nil Text keeps
// the current search text.
type BoardQuery struct {
	Text     *string
	Statuses []string
	Tags     []string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
	Flush    bool
}

type BoardSnapshot struct {
	State listview.ViewState
	Page  Page[candidate.Candidate]
}

type BoardUsecase interface {
	Snapshot(ctx context.Context, actor user.Actor) (BoardSnapshot, error)
	SetQuery(ctx context.Context, actor user.Actor, q BoardQuery) (BoardSnapshot, error)
	ToggleSort(ctx context.Context, actor user.Actor, field string) (BoardSnapshot, error)
	SelectAll(ctx context.Context, actor user.Actor) (BoardSnapshot, error)
	ToggleSelection(ctx context.Context, actor user.Actor, id string) (BoardSnapshot, error)
	ClearSelection(ctx context.Context, actor user.Actor) (BoardSnapshot, error)
}

// Board keeps one candidate view per acting user, so search text, sort and
// selection survive between requests.
type Board struct {
	mu    sync.Mutex
	views map[string]*listview.View[candidate.Candidate]

	store    *repository.Collection[candidate.Candidate]
	window   time.Duration
	pageSize int
	logger   *log.Logger
}

func NewBoardUsecase(store *repository.Collection[candidate.Candidate], window time.Duration, pageSize int, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	return &Board{
		views:    map[string]*listview.View[candidate.Candidate]{},
		store:    store,
		window:   window,
		pageSize: pageSize,
		logger:   logger,
	}
}

func (u *Board) view(actor user.Actor) *listview.View[candidate.Candidate] {
	u.mu.Lock()
	defer u.mu.Unlock()

	v, ok := u.views[actor.ID]
	if !ok {
		v = listview.NewView(CandidateDescriptor, u.window)
		_ = v.SetPage(u.pageSize, 0)
		u.views[actor.ID] = v
		u.logger.Printf("[Board] Opened board actor=%s", actor.ID)
	}
	return v
}

func (u *Board) snapshot(v *listview.View[candidate.Candidate]) (BoardSnapshot, error) {
	state := v.State()
	res, err := v.Render(u.store.Snapshot())
	if err != nil {
		return BoardSnapshot{}, engineError(err)
	}
	return BoardSnapshot{
		State: state,
		Page: Page[candidate.Candidate]{
			Items:      res.Items,
			Total:      res.Total,
			Limit:      state.Query.Limit,
			Offset:     state.Query.Offset,
			Sort:       res.Sort,
			VisibleIDs: res.VisibleIDs,
		},
	}, nil
}

func (u *Board) Snapshot(ctx context.Context, actor user.Actor) (BoardSnapshot, error) {
	return u.snapshot(u.view(actor))
}

func (u *Board) SetQuery(ctx context.Context, actor user.Actor, q BoardQuery) (BoardSnapshot, error) {
	limit := q.Limit
	if limit == 0 {
		limit = u.pageSize
	}
	if limit < 0 || limit > maxPageSize || q.Offset < 0 {
		return BoardSnapshot{}, ErrInvalidInput
	}

	v := u.view(actor)
	if err := v.SetRange(dateRange(q.From, q.To)); err != nil {
		return BoardSnapshot{}, engineError(err)
	}
	if err := v.SetFacet("status", q.Statuses); err != nil {
		return BoardSnapshot{}, engineError(err)
	}
	if err := v.SetFacet("tags", q.Tags); err != nil {
		return BoardSnapshot{}, engineError(err)
	}
	if err := v.SetPage(limit, q.Offset); err != nil {
		return BoardSnapshot{}, engineError(err)
	}
	if q.Text != nil {
		v.SetText(*q.Text)
	}
	if q.Flush {
		v.FlushText()
	}
	return u.snapshot(v)
}

func (u *Board) ToggleSort(ctx context.Context, actor user.Actor, field string) (BoardSnapshot, error) {
	v := u.view(actor)
	if _, err := v.ToggleSort(field); err != nil {
		return BoardSnapshot{}, engineError(err)
	}
	return u.snapshot(v)
}

// SelectAll selects every record matching the current query, ignoring the
// page window.
func (u *Board) SelectAll(ctx context.Context, actor user.Actor) (BoardSnapshot, error) {
	v := u.view(actor)
	if _, err := v.SelectAll(u.store.Snapshot()); err != nil {
		return BoardSnapshot{}, engineError(err)
	}
	return u.snapshot(v)
}

func (u *Board) ToggleSelection(ctx context.Context, actor user.Actor, id string) (BoardSnapshot, error) {
	v := u.view(actor)
	if _, ok := u.store.Get(id); !ok && !containsID(v.Selected(), id) {
		return BoardSnapshot{}, ErrNotFound
	}
	v.Toggle(id)
	return u.snapshot(v)
}

func (u *Board) ClearSelection(ctx context.Context, actor user.Actor) (BoardSnapshot, error) {
	v := u.view(actor)
	v.ClearSelection()
	return u.snapshot(v)
}

// Close stops every pending debounce timer.
func (u *Board) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, v := range u.views {
		v.Close()
		delete(u.views, id)
	}
}

func dateRange(from, to *time.Time) *listview.DateRange {
	if from == nil && to == nil {
		return nil
	}
	return &listview.DateRange{From: from, To: to}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
