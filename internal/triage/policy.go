package triage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/symcheck/internal/catalog"
)

// ErrUnknownPolicy is returned when a policy name is not recognised.
var ErrUnknownPolicy = errors.New("unknown evaluation policy")

// PolicyName identifies an evaluation policy.
type PolicyName string

const (
	// PolicyEarlyExit stops the question sequence on the first red-flag "yes".
	PolicyEarlyExit PolicyName = "early-exit"

	// PolicyExhaustive asks every question and applies red flags at the end.
	PolicyExhaustive PolicyName = "exhaustive"
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = PolicyEarlyExit

// Policy decides when an assessment stops and how its answers are classified.
// A policy is chosen when an assessment starts and never changes during it.
type Policy interface {
	// Name returns the policy identifier.
	Name() PolicyName

	// StopEarly reports whether the question sequence ends right after
	// the given answer, before the remaining questions are asked.
	StopEarly(q catalog.Question, answer bool) bool

	// Classify maps a category's answers to a level.
	Classify(c catalog.Category, a Answers) Level
}

// Thresholds are the minimum "yes" counts for the urgent and clinic levels
// when no red flag fired.
type Thresholds struct {
	Urgent int
	Clinic int
}

// Level returns the level for the given yes count.
func (t Thresholds) Level(yes int) Level {
	switch {
	case yes >= t.Urgent:
		return LevelUrgent
	case yes >= t.Clinic:
		return LevelClinic
	default:
		return LevelSelfCare
	}
}

// EarlyExit classifies as emergency as soon as a red-flag question is
// answered "yes" and skips the rest of the questions.
type EarlyExit struct {
	Thresholds Thresholds
}

// NewEarlyExit returns the early-exit policy with its standard thresholds
// (3+ yes urgent, 1+ yes clinic).
func NewEarlyExit() EarlyExit {
	return EarlyExit{Thresholds: Thresholds{Urgent: 3, Clinic: 1}}
}

func (p EarlyExit) Name() PolicyName { return PolicyEarlyExit }

func (p EarlyExit) StopEarly(q catalog.Question, answer bool) bool {
	return answer && q.IsRedFlag
}

func (p EarlyExit) Classify(c catalog.Category, a Answers) Level {
	return classify(c, a, p.Thresholds)
}

// Exhaustive always asks every question. A red-flag "yes" anywhere still
// makes the result an emergency.
type Exhaustive struct {
	Thresholds Thresholds
}

// NewExhaustive returns the exhaustive policy with its standard thresholds
// (6+ yes urgent, 3+ yes clinic).
func NewExhaustive() Exhaustive {
	return Exhaustive{Thresholds: Thresholds{Urgent: 6, Clinic: 3}}
}

func (p Exhaustive) Name() PolicyName { return PolicyExhaustive }

func (p Exhaustive) StopEarly(catalog.Question, bool) bool { return false }

func (p Exhaustive) Classify(c catalog.Category, a Answers) Level {
	return classify(c, a, p.Thresholds)
}

func classify(c catalog.Category, a Answers, t Thresholds) Level {
	if a.RedFlagYes(c) {
		return LevelEmergency
	}
	return t.Level(a.YesCount(c))
}

// PolicyNames returns all known policy names, default first.
func PolicyNames() []PolicyName {
	return []PolicyName{PolicyEarlyExit, PolicyExhaustive}
}

// PolicyByName returns the policy with the given name. An empty name selects
// the default policy.
func PolicyByName(name string) (Policy, error) {
	switch PolicyName(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyEarlyExit:
		return NewEarlyExit(), nil
	case PolicyExhaustive:
		return NewExhaustive(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownPolicy, name, PolicyEarlyExit, PolicyExhaustive)
	}
}
