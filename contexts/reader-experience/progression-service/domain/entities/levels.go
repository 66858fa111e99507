package entities

import "errors"

// LevelTable is the immutable, ascending-by-threshold level configuration
// loaded once at startup and injected into the progression engine.
type LevelTable struct {
	defs []LevelDefinition
}

func NewLevelTable(defs []LevelDefinition) (LevelTable, error) {
	if len(defs) == 0 {
		return LevelTable{}, errors.New("level table requires at least one definition")
	}
	if defs[0].PointsThreshold != 0 {
		return LevelTable{}, errors.New("level table must start at threshold zero")
	}
	for i := 1; i < len(defs); i++ {
		if defs[i].PointsThreshold <= defs[i-1].PointsThreshold {
			return LevelTable{}, errors.New("level table thresholds must be strictly ascending")
		}
	}
	return LevelTable{defs: append([]LevelDefinition(nil), defs...)}, nil
}

// DefaultLevelTable returns the platform's stock progression ladder.
func DefaultLevelTable() LevelTable {
	table, err := NewLevelTable([]LevelDefinition{
		{Level: 0, Name: "Newbie", PointsThreshold: 0, RubyBonus: 0},
		{Level: 1, Name: "Beginner", PointsThreshold: 10, RubyBonus: 50},
		{Level: 2, Name: "Intermediate", PointsThreshold: 100, RubyBonus: 100},
		{Level: 3, Name: "Advanced", PointsThreshold: 500, RubyBonus: 300},
	})
	if err != nil {
		panic(err)
	}
	return table
}

// Resolve returns the last definition whose threshold does not exceed points.
// Points below the first threshold resolve to the base level; points beyond
// the highest threshold resolve to the maximum level.
func (t LevelTable) Resolve(points int) LevelDefinition {
	resolved := t.defs[0]
	for _, def := range t.defs[1:] {
		if points < def.PointsThreshold {
			break
		}
		resolved = def
	}
	return resolved
}

func (t LevelTable) Definitions() []LevelDefinition {
	return append([]LevelDefinition(nil), t.defs...)
}

func (t LevelTable) IsZero() bool {
	return len(t.defs) == 0
}
