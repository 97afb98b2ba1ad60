package triage

import (
	"maps"

	"github.com/abhisek/symcheck/internal/catalog"
)

// Answers maps question IDs to the user's yes/no answers. A question with
// no entry counts as "no".
type Answers map[string]bool

// Clone returns an independent copy of the answers.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	maps.Copy(out, a)
	return out
}

// YesCount returns the number of the category's questions answered "yes".
// Entries for questions outside the category are ignored.
func (a Answers) YesCount(c catalog.Category) int {
	n := 0
	for _, q := range c.Questions {
		if a[q.ID] {
			n++
		}
	}
	return n
}

// RedFlagYes reports whether any of the category's red-flag questions was
// answered "yes".
func (a Answers) RedFlagYes(c catalog.Category) bool {
	for _, q := range c.Questions {
		if q.IsRedFlag && a[q.ID] {
			return true
		}
	}
	return false
}

// Evaluate classifies the answers with the policy and returns the matching
// result template. It is a pure function of its inputs.
func Evaluate(p Policy, c catalog.Category, a Answers) Result {
	return Template(p.Classify(c, a))
}

// Evaluator evaluates assessments against a catalog by category ID.
type Evaluator struct {
	catalog *catalog.Catalog
	policy  Policy
}

// NewEvaluator creates an Evaluator. A nil policy selects the default.
func NewEvaluator(cat *catalog.Catalog, p Policy) *Evaluator {
	if p == nil {
		p = NewEarlyExit()
	}
	return &Evaluator{catalog: cat, policy: p}
}

// Policy returns the evaluator's policy.
func (e *Evaluator) Policy() Policy {
	return e.policy
}

// EvaluateID evaluates answers for the category with the given ID. An unknown
// ID yields the fallback result together with an error wrapping
// catalog.ErrInvalidCategory.
func (e *Evaluator) EvaluateID(id string, a Answers) (Result, error) {
	c, err := e.catalog.Get(id)
	if err != nil {
		return Fallback(), err
	}
	return Evaluate(e.policy, c, a), nil
}
