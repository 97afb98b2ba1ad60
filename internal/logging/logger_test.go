package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/symcheck/internal/assessment"
	"github.com/abhisek/symcheck/internal/catalog"
	"github.com/abhisek/symcheck/internal/triage"
)

func TestNew_EmptyFileIsNop(t *testing.T) {
	logger, err := New("", "debug")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "symcheck.log")
	logger, err := New(path, "info")
	require.NoError(t, err)

	logger.Info("hello", zap.String("k", "v"))
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"k":"v"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse log level"))
}

func TestAssessmentObserver_LogsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	a := assessment.New(catalog.Default(), triage.NewEarlyExit(),
		assessment.WithIDGenerator(func() string { return "id-1" }),
		assessment.WithObserver(AssessmentObserver(logger, triage.PolicyEarlyExit)))

	require.NoError(t, a.Start("injury"))
	_, err := a.Answer(false)
	require.NoError(t, err)
	_, err = a.Answer(true) // injury-bone is a red flag
	require.NoError(t, err)

	completed := logs.FilterMessage("Assessment completed").All()
	require.Len(t, completed, 1)
	ctx := completed[0].ContextMap()
	assert.Equal(t, "id-1", ctx["assessment_id"])
	assert.Equal(t, "injury", ctx["category"])
	assert.Equal(t, true, ctx["early_exit"])

	assert.Equal(t, 1, logs.FilterMessage("Question answered").Len())
	assert.Equal(t, 2, logs.FilterMessage("Assessment transition").Len())
}
