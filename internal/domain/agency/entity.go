package agency

import "time"

type Tier string

const (
	TierGold   Tier = "gold"
	TierSilver Tier = "silver"
	TierBronze Tier = "bronze"
	TierNew    Tier = "new"
)

// Rank orders tiers from gold down to new. Unknown tiers rank lowest.
func (t Tier) Rank() int {
	switch t {
	case TierGold:
		return 4
	case TierSilver:
		return 3
	case TierBronze:
		return 2
	case TierNew:
		return 1
	default:
		return 0
	}
}

type Agency struct {
	ID               string    `yaml:"id"`
	Name             string    `yaml:"name"`
	Tier             Tier      `yaml:"tier"`
	Location         string    `yaml:"location"`
	Description      string    `yaml:"description"`
	Specialization   []string  `yaml:"specialization"`
	Website          string    `yaml:"website"`
	ContactPerson    string    `yaml:"contact_person"`
	Email            string    `yaml:"email"`
	Phone            string    `yaml:"phone"`
	Rating           float64   `yaml:"rating"`
	SuccessRate      float64   `yaml:"success_rate"`
	TotalPlacements  int       `yaml:"total_placements"`
	ActiveRecruiters int       `yaml:"active_recruiters"`
	JoinedAt         time.Time `yaml:"joined_at"`
}
