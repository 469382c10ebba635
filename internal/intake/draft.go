package intake

import (
	"context"
	"encoding/json"

	"hireboard/internal/domain/candidate"
)

const DefaultDraftKey = "draft-candidate"

// DraftStore holds one serialized draft per key.
type DraftStore interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// DraftKey scopes the draft slot to one acting user.
func DraftKey(prefix, userID string) string {
	if prefix == "" {
		prefix = DefaultDraftKey
	}
	if userID == "" {
		return prefix
	}
	return prefix + ":" + userID
}

func encodeDraft(d candidate.NewCandidate) ([]byte, error) {
	return json.Marshal(d)
}

func decodeDraft(b []byte) (candidate.NewCandidate, error) {
	var d candidate.NewCandidate
	if err := json.Unmarshal(b, &d); err != nil {
		return candidate.NewCandidate{}, err
	}
	return normalize(d), nil
}

func emptyDraft() candidate.NewCandidate {
	return candidate.NewCandidate{Tags: []string{}, Skills: []string{}}
}

func normalize(d candidate.NewCandidate) candidate.NewCandidate {
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	return d
}

func cloneDraft(d candidate.NewCandidate) candidate.NewCandidate {
	d.Tags = append([]string{}, d.Tags...)
	d.Skills = append([]string{}, d.Skills...)
	return d
}
