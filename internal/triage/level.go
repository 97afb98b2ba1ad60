package triage

import (
	"errors"
	"fmt"
)

// ErrUnknownLevel is returned when parsing a level name fails.
var ErrUnknownLevel = errors.New("unknown triage level")

// Level is the triage severity. Levels are ordered: a greater value is
// more severe.
type Level int

const (
	LevelSelfCare  Level = iota // Manage at home
	LevelClinic                 // Book a clinic appointment
	LevelUrgent                 // Urgent care within 24 hours
	LevelEmergency              // Call emergency services now
)

// AllLevels returns all levels from least to most severe.
func AllLevels() []Level {
	return []Level{LevelSelfCare, LevelClinic, LevelUrgent, LevelEmergency}
}

// String returns the level's stable identifier.
func (l Level) String() string {
	switch l {
	case LevelSelfCare:
		return "selfcare"
	case LevelClinic:
		return "clinic"
	case LevelUrgent:
		return "urgent"
	case LevelEmergency:
		return "emergency"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Label returns a human-readable name for the level.
func (l Level) Label() string {
	switch l {
	case LevelSelfCare:
		return "Self-Care"
	case LevelClinic:
		return "Campus Clinic"
	case LevelUrgent:
		return "Urgent Care"
	case LevelEmergency:
		return "Emergency"
	default:
		return "Unknown"
	}
}

// Icon returns the display icon for the level.
func (l Level) Icon() string {
	switch l {
	case LevelSelfCare:
		return "🏠"
	case LevelClinic:
		return "📍"
	case LevelUrgent:
		return "⚠️"
	case LevelEmergency:
		return "📞"
	default:
		return "?"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelSelfCare && l <= LevelEmergency
}

// ParseLevel converts an identifier produced by String back into a Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range AllLevels() {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText encodes the level as its identifier.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes an identifier into the level.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
