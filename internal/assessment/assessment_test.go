package assessment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/symcheck/internal/catalog"
	"github.com/abhisek/symcheck/internal/triage"
)

func testAssessment(p triage.Policy, opts ...Option) *Assessment {
	opts = append([]Option{WithIDGenerator(func() string { return "test-assessment-id" })}, opts...)
	return New(catalog.Default(), p, opts...)
}

// answerAll answers questions until completion using fn to pick answers.
func answerAll(t *testing.T, a *Assessment, fn func(q catalog.Question) bool) int {
	t.Helper()
	asked := 0
	for {
		q, err := a.Current()
		require.NoError(t, err)
		asked++
		done, err := a.Answer(fn(q))
		require.NoError(t, err)
		if done {
			return asked
		}
	}
}

func TestNew_StartsIdle(t *testing.T) {
	a := testAssessment(nil)
	assert.Equal(t, PhaseIdle, a.Phase())
	assert.Equal(t, triage.PolicyEarlyExit, a.Policy().Name())
	assert.Empty(t, a.ID())

	_, ok := a.Result()
	assert.False(t, ok)
}

func TestSelect_UnknownCategoryStaysIdle(t *testing.T) {
	a := testAssessment(nil)
	err := a.Select("sneezing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrInvalidCategory))
	assert.Equal(t, PhaseIdle, a.Phase())
}

func TestLifecycle_Transitions(t *testing.T) {
	var seen []Transition
	a := testAssessment(triage.NewExhaustive(), WithObserver(func(tr Transition) {
		seen = append(seen, tr)
	}))

	require.NoError(t, a.Select("fever"))
	assert.Equal(t, PhaseCategorySelected, a.Phase())
	assert.Equal(t, "test-assessment-id", a.ID())

	_, err := a.Current()
	assert.True(t, errors.Is(err, ErrInvalidState))

	require.NoError(t, a.Begin())
	assert.Equal(t, PhaseAnswering, a.Phase())

	n, total := a.Progress()
	assert.Equal(t, 1, n)
	assert.Equal(t, 10, total)

	asked := answerAll(t, a, func(catalog.Question) bool { return false })
	assert.Equal(t, 10, asked)
	assert.Equal(t, PhaseCompleted, a.Phase())

	r, ok := a.Result()
	require.True(t, ok)
	assert.Equal(t, triage.LevelSelfCare, r.Level)

	a.Restart()
	assert.Equal(t, PhaseIdle, a.Phase())
	assert.Empty(t, a.Answers())

	require.NotEmpty(t, seen)
	assert.Equal(t, PhaseIdle, seen[0].From)
	assert.Equal(t, PhaseCategorySelected, seen[0].To)
	last := seen[len(seen)-1]
	assert.Equal(t, PhaseCompleted, last.From)
	assert.Equal(t, PhaseIdle, last.To)
	assert.Equal(t, "test-assessment-id", last.AssessmentID)
}

func TestAnswer_EarlyExitStopsOnRedFlag(t *testing.T) {
	a := testAssessment(triage.NewEarlyExit())
	require.NoError(t, a.Start("cough"))

	// cough-breathing (red flag) = no, cough-blood (red flag) = yes.
	done, err := a.Answer(false)
	require.NoError(t, err)
	assert.False(t, done)

	q, err := a.Current()
	require.NoError(t, err)
	assert.Equal(t, "cough-blood", q.ID)

	done, err = a.Answer(true)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, a.EarlyExit())

	r, ok := a.Result()
	require.True(t, ok)
	assert.Equal(t, triage.LevelEmergency, r.Level)
	assert.Len(t, a.Answers(), 2)
}

func TestAnswer_ExhaustiveAsksEverything(t *testing.T) {
	a := testAssessment(triage.NewExhaustive())
	require.NoError(t, a.Start("cough"))

	asked := answerAll(t, a, func(q catalog.Question) bool { return q.ID == "cough-blood" })
	assert.Equal(t, 11, asked)
	assert.False(t, a.EarlyExit())

	r, ok := a.Result()
	require.True(t, ok)
	assert.Equal(t, triage.LevelEmergency, r.Level)
	assert.Len(t, a.Answers(), 11)
}

func TestAnswer_EarlyExitWithoutRedFlagAsksAll(t *testing.T) {
	a := testAssessment(triage.NewEarlyExit())
	require.NoError(t, a.Start("headache"))

	yes := 0
	asked := answerAll(t, a, func(q catalog.Question) bool {
		if q.IsRedFlag || yes >= 7 {
			return false
		}
		yes++
		return true
	})
	assert.Equal(t, 11, asked)

	r, _ := a.Result()
	assert.Equal(t, triage.LevelUrgent, r.Level)
}

func TestAnswer_RedFlagOnLastQuestionIsNotEarlyExit(t *testing.T) {
	cat, err := catalog.New("1.0.0", []catalog.Category{{
		ID:   "test",
		Name: "Test",
		Questions: []catalog.Question{
			{ID: "test-1", Text: "One?"},
			{ID: "test-2", Text: "Two?", IsRedFlag: true},
		},
	}})
	require.NoError(t, err)

	a := New(cat, triage.NewEarlyExit())
	require.NoError(t, a.Start("test"))
	_, _ = a.Answer(false)
	done, err := a.Answer(true)
	require.NoError(t, err)
	assert.True(t, done)
	assert.False(t, a.EarlyExit())
}

func TestAnswer_AfterCompletionFails(t *testing.T) {
	a := testAssessment(triage.NewEarlyExit())
	require.NoError(t, a.Start("injury"))
	done, err := a.Answer(true) // injury-bleeding is a red flag
	require.NoError(t, err)
	require.True(t, done)

	_, err = a.Answer(false)
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestAnswer_WhileIdleFails(t *testing.T) {
	a := testAssessment(nil)
	_, err := a.Answer(true)
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestSelect_WhileAnsweringFails(t *testing.T) {
	a := testAssessment(nil)
	require.NoError(t, a.Start("fever"))
	err := a.Select("cough")
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestRestart_DiscardsAnswersAndAllowsNewCategory(t *testing.T) {
	a := testAssessment(triage.NewExhaustive())
	require.NoError(t, a.Start("fever"))
	_, _ = a.Answer(true)
	_, _ = a.Answer(true)

	a.Restart()
	require.NoError(t, a.Start("stomach"))
	assert.Empty(t, a.Answers())
	assert.Equal(t, "stomach", a.Category().ID)
	assert.Equal(t, 0, a.Index())
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	a := testAssessment(nil)
	require.NoError(t, a.Start("fever"))
	_, _ = a.Answer(false)

	got := a.Answers()
	got["fever-high"] = true
	assert.False(t, a.Answers()["fever-high"])
}

func TestAnswer_GrowsByOnePerQuestion(t *testing.T) {
	a := testAssessment(triage.NewExhaustive())
	require.NoError(t, a.Start("stomach"))
	for i := 1; i <= 5; i++ {
		_, err := a.Answer(i%2 == 0)
		require.NoError(t, err)
		assert.Len(t, a.Answers(), i)
	}
}
