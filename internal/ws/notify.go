package ws

import (
	"encoding/json"
	"time"
)

const (
	ChangeAdded    = "added"
	ChangeDeleted  = "deleted"
	ChangeRestored = "restored"
)

type CandidatesChangedEvent struct {
	Type      string   `json:"type"`
	Change    string   `json:"change"`
	IDs       []string `json:"ids"`
	ActorID   string   `json:"actorId"`
	Timestamp string   `json:"timestamp"`
}

// Notifier turns collection changes into hub broadcasts.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) CandidatesChanged(change, actorID string, ids []string) {
	if n == nil || n.hub == nil || len(ids) == 0 {
		return
	}

	evt := CandidatesChangedEvent{
		Type:      "candidates_changed",
		Change:    change,
		IDs:       ids,
		ActorID:   actorID,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
