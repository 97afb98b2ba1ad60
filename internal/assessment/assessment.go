package assessment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/symcheck/internal/catalog"
	"github.com/abhisek/symcheck/internal/triage"
)

// Assessment is one user run through a single category's question
// sequence. It owns the answer set and runs the evaluator once the
// policy says the sequence is over. It is not safe for concurrent use.
type Assessment struct {
	catalog  *catalog.Catalog
	policy   triage.Policy
	observer Observer
	newID    func() string

	id        string
	phase     Phase
	category  catalog.Category
	index     int
	answers   triage.Answers
	result    triage.Result
	earlyExit bool
}

// Option configures an Assessment.
type Option func(*Assessment)

// WithObserver registers a callback for phase transitions.
func WithObserver(o Observer) Option {
	return func(a *Assessment) { a.observer = o }
}

// WithIDGenerator overrides how assessment IDs are generated.
func WithIDGenerator(f func() string) Option {
	return func(a *Assessment) { a.newID = f }
}

// New creates an idle assessment. A nil catalog selects the embedded one
// and a nil policy selects the default.
func New(cat *catalog.Catalog, p triage.Policy, opts ...Option) *Assessment {
	if cat == nil {
		cat = catalog.Default()
	}
	if p == nil {
		p = triage.NewEarlyExit()
	}
	a := &Assessment{
		catalog: cat,
		policy:  p,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID returns the identifier of the current run (empty while idle).
func (a *Assessment) ID() string { return a.id }

// Phase returns the current phase.
func (a *Assessment) Phase() Phase { return a.phase }

// Policy returns the evaluation policy chosen at construction.
func (a *Assessment) Policy() triage.Policy { return a.policy }

// Category returns the selected category (zero value while idle).
func (a *Assessment) Category() catalog.Category { return a.category }

// Index returns the zero-based index of the current question.
func (a *Assessment) Index() int { return a.index }

// Progress returns the 1-based number of the current question and the
// total number of questions in the category.
func (a *Assessment) Progress() (int, int) {
	return a.index + 1, a.category.Len()
}

// EarlyExit reports whether the run completed before the last question.
func (a *Assessment) EarlyExit() bool { return a.earlyExit }

// Answers returns a copy of the answers recorded so far.
func (a *Assessment) Answers() triage.Answers {
	return a.answers.Clone()
}

// Select chooses a category and discards any previous answers.
// Allowed only while idle.
func (a *Assessment) Select(categoryID string) error {
	if a.phase != PhaseIdle {
		return fmt.Errorf("%w: select in phase %s", ErrInvalidState, a.phase)
	}
	c, err := a.catalog.Get(categoryID)
	if err != nil {
		return err
	}

	a.id = a.newID()
	a.category = c
	a.index = 0
	a.answers = make(triage.Answers, c.Len())
	a.result = triage.Result{}
	a.earlyExit = false
	a.transition(PhaseCategorySelected)
	return nil
}

// Begin starts serving questions from the first one.
func (a *Assessment) Begin() error {
	if a.phase != PhaseCategorySelected {
		return fmt.Errorf("%w: begin in phase %s", ErrInvalidState, a.phase)
	}
	a.index = 0
	a.transition(PhaseAnswering)
	return nil
}

// Start selects a category and begins answering in one step.
func (a *Assessment) Start(categoryID string) error {
	if err := a.Select(categoryID); err != nil {
		return err
	}
	return a.Begin()
}

// Current returns the question awaiting an answer.
func (a *Assessment) Current() (catalog.Question, error) {
	if a.phase != PhaseAnswering {
		return catalog.Question{}, fmt.Errorf("%w: no current question in phase %s", ErrInvalidState, a.phase)
	}
	return a.category.Questions[a.index], nil
}

// Answer records the answer to the current question and advances. It
// returns true when the assessment completed as a result of this answer,
// either because the policy stopped early or the last question was reached.
func (a *Assessment) Answer(yes bool) (bool, error) {
	q, err := a.Current()
	if err != nil {
		return false, err
	}

	a.answers[q.ID] = yes

	if a.policy.StopEarly(q, yes) {
		a.earlyExit = a.index < a.category.Len()-1
		a.complete()
		return true, nil
	}
	if a.index >= a.category.Len()-1 {
		a.complete()
		return true, nil
	}

	a.index++
	a.notify(PhaseAnswering, PhaseAnswering)
	return false, nil
}

// Result returns the triage result once the assessment has completed.
func (a *Assessment) Result() (triage.Result, bool) {
	if a.phase != PhaseCompleted {
		return triage.Result{}, false
	}
	r := a.result
	r.Actions = append([]string(nil), a.result.Actions...)
	return r, true
}

// Restart discards the current run and returns to idle. Allowed in any phase.
func (a *Assessment) Restart() {
	from := a.phase
	a.notify(from, PhaseIdle)
	a.phase = PhaseIdle
	a.id = ""
	a.category = catalog.Category{}
	a.index = 0
	a.answers = nil
	a.result = triage.Result{}
	a.earlyExit = false
}

func (a *Assessment) complete() {
	a.result = triage.Evaluate(a.policy, a.category, a.answers)
	a.transition(PhaseCompleted)
}

func (a *Assessment) transition(to Phase) {
	from := a.phase
	a.phase = to
	a.notify(from, to)
}

func (a *Assessment) notify(from, to Phase) {
	if a.observer == nil {
		return
	}
	a.observer(Transition{
		AssessmentID: a.id,
		CategoryID:   a.category.ID,
		From:         from,
		To:           to,
		Index:        a.index,
		EarlyExit:    a.earlyExit,
		YesCount:     a.answers.YesCount(a.category),
	})
}
