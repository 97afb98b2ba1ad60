package logging

import (
	"go.uber.org/zap"

	"github.com/abhisek/symcheck/internal/assessment"
	"github.com/abhisek/symcheck/internal/triage"
)

// AssessmentObserver returns an observer that logs assessment transitions.
// Question-to-question steps are logged at debug level.
func AssessmentObserver(logger *zap.Logger, policy triage.PolicyName) assessment.Observer {
	return func(tr assessment.Transition) {
		fields := []zap.Field{
			zap.String("assessment_id", tr.AssessmentID),
			zap.String("category", tr.CategoryID),
			zap.String("policy", string(policy)),
			zap.Stringer("from", tr.From),
			zap.Stringer("to", tr.To),
			zap.Int("question_index", tr.Index),
			zap.Int("yes_count", tr.YesCount),
		}
		switch {
		case tr.To == assessment.PhaseCompleted:
			fields = append(fields, zap.Bool("early_exit", tr.EarlyExit))
			logger.Info("Assessment completed", fields...)
		case tr.From == tr.To:
			logger.Debug("Question answered", fields...)
		default:
			logger.Info("Assessment transition", fields...)
		}
	}
}

// Result logs an evaluation outcome.
func Result(logger *zap.Logger, assessmentID string, r triage.Result) {
	logger.Info("Triage result",
		zap.String("assessment_id", assessmentID),
		zap.Stringer("level", r.Level),
		zap.String("title", r.Title))
}
