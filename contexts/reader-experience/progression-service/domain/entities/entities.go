package entities

import "time"

type Role string

const (
	RoleUser    Role = "USER"
	RoleUserVIP Role = "USERVIP"
	RoleAdmin   Role = "ADMIN"
)

// LevelDefinition maps a cumulative-points threshold to a named level and the
// one-time ruby bonus granted on reaching it.
type LevelDefinition struct {
	Level           int
	Name            string
	PointsThreshold int
	RubyBonus       int
}

// ReaderProgress is the progression state owned by a single reader. Level and
// LevelName are always derived from Points through the level table; they are
// never set independently.
type ReaderProgress struct {
	UserID       string
	Role         Role
	Points       int
	Level        int
	LevelName    string
	Ruby         int
	Achievements []string
	UpdatedAt    time.Time
}

func (p ReaderProgress) HasAchievement(achievementID string) bool {
	for _, owned := range p.Achievements {
		if owned == achievementID {
			return true
		}
	}
	return false
}

func (p ReaderProgress) IsVIPSubscriber() bool {
	return p.Role == RoleUserVIP
}
