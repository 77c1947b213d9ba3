package domain

import (
	"math"
	"time"
)

const (
	MinLevel = 0
	MaxLevel = 9
)

// PersonalityLevel is the (fierceness, style) dial pair. Values outside
// 0..9 are clamped on read, never rejected.
type PersonalityLevel struct {
	Fierceness int
	Style      int
}

// DefaultPersonality is the sweet/friendly pair used whenever the stored
// pair is missing or cannot be read.
var DefaultPersonality = PersonalityLevel{Fierceness: 0, Style: 0}

// Clamp returns a copy with both dials inside 0..9.
func (p PersonalityLevel) Clamp() PersonalityLevel {
	return PersonalityLevel{
		Fierceness: ClampLevel(p.Fierceness),
		Style:      ClampLevel(p.Style),
	}
}

// ClampLevel clamps a dial value to 0..9.
func ClampLevel(level int) int {
	return max(MinLevel, min(MaxLevel, level))
}

// ClampLevelFloat floors then clamps a fractional dial value.
func ClampLevelFloat(level float64) int {
	if math.IsNaN(level) {
		return MinLevel
	}
	if level <= MinLevel {
		return MinLevel
	}
	if level >= MaxLevel {
		return MaxLevel
	}
	return int(math.Floor(level))
}

// PersonalitySettings is the persisted per-user dial pair.
type PersonalitySettings struct {
	UserID    string
	Level     PersonalityLevel
	Adaptive  bool
	UpdatedAt time.Time
}
