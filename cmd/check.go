package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/symcheck/internal/assessment"
	"github.com/abhisek/symcheck/internal/catalog"
	"github.com/abhisek/symcheck/internal/logging"
	"github.com/abhisek/symcheck/internal/triage"
)

var checkCmd = &cobra.Command{
	Use:   "check CATEGORY",
	Short: "Evaluate a category non-interactively",
	Long: "Evaluate a symptom category with the given yes answers; every other\n" +
		"question is answered no. Under the early-exit policy, answers after the\n" +
		"first red-flag yes are not consulted, as in the interactive flow.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		policy, err := cfg.EvaluationPolicy()
		if err != nil {
			return err
		}

		logger := zap.NewNop()
		if cfg.Logging.Level == "debug" {
			if logger, err = logging.NewStderr("debug"); err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			logConfig(logger, cfg)
		}

		yes, _ := cmd.Flags().GetStringSlice("yes")
		asJSON, _ := cmd.Flags().GetBool("json")
		asMarkdown, _ := cmd.Flags().GetBool("markdown")

		out, err := runCheck(catalog.Default(), policy, logger, args[0], yes)
		if out == nil {
			return err
		}
		var printErr error
		if asMarkdown {
			printErr = printMarkdown(cmd.OutOrStdout(), out, "", 80)
		} else {
			printErr = printCheck(cmd.OutOrStdout(), out, asJSON)
		}
		if printErr != nil {
			return printErr
		}
		return err
	},
}

func init() {
	checkCmd.Flags().StringSlice("yes", nil, "Question ids answered yes (comma separated)")
	checkCmd.Flags().Bool("json", false, "Print the result as JSON")
	checkCmd.Flags().Bool("markdown", false, "Render the result as formatted Markdown")
	checkCmd.MarkFlagsMutuallyExclusive("json", "markdown")
}

// checkOutput is the result of a non-interactive check.
type checkOutput struct {
	Category     string        `json:"category"`
	Policy       string        `json:"policy"`
	AssessmentID string        `json:"assessment_id,omitempty"`
	Answered     int           `json:"answered"`
	Questions    int           `json:"questions"`
	EarlyExit    bool          `json:"early_exit"`
	Result       triage.Result `json:"result"`
}

// runCheck walks the category's questions in order, answering yes to the
// given ids. An unknown category yields the fallback result together with
// an error. Answer ids outside the category are rejected with a nil output,
// since no assessment was run.
func runCheck(cat *catalog.Catalog, policy triage.Policy, logger *zap.Logger, categoryID string, yes []string) (*checkOutput, error) {
	out := &checkOutput{Category: categoryID, Policy: string(policy.Name())}

	c, err := cat.Get(categoryID)
	if err != nil {
		out.Result, err = triage.NewEvaluator(cat, policy).EvaluateID(categoryID, nil)
		logger.Warn("Unknown category", zap.String("category", categoryID), zap.Error(err))
		return out, err
	}
	out.Questions = c.Len()

	answers, err := yesAnswers(cat, c, yes)
	if err != nil {
		return nil, err
	}

	a := assessment.New(cat, policy,
		assessment.WithObserver(logging.AssessmentObserver(logger, policy.Name())))
	if err := a.Start(categoryID); err != nil {
		return nil, err
	}
	for {
		q, err := a.Current()
		if err != nil {
			return nil, err
		}
		out.Answered++
		done, err := a.Answer(answers[q.ID])
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	r, ok := a.Result()
	if !ok {
		return nil, errors.New("assessment did not complete")
	}
	out.AssessmentID = a.ID()
	out.EarlyExit = a.EarlyExit()
	out.Result = r
	logging.Result(logger, a.ID(), r)
	return out, nil
}

// yesAnswers builds the answer set for c from question ids. Ids belonging
// to another category are named in the error along with their owner.
func yesAnswers(cat *catalog.Catalog, c catalog.Category, ids []string) (triage.Answers, error) {
	answers := make(triage.Answers, len(ids))
	var bad []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := c.Question(id); ok {
			answers[id] = true
			continue
		}
		if owner, ok := cat.CategoryOf(id); ok {
			bad = append(bad, fmt.Sprintf("%s (belongs to %s)", id, owner.ID))
		} else {
			bad = append(bad, fmt.Sprintf("%s (unknown question)", id))
		}
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("questions not in category %q: %s", c.ID, strings.Join(bad, ", "))
	}
	return answers, nil
}

func printCheck(w io.Writer, out *checkOutput, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	r := out.Result
	fmt.Fprintf(w, "%s  %s (%s)\n", r.Level.Icon(), r.Title, r.Level.Label())
	fmt.Fprintf(w, "%s\n\n", r.Description)
	fmt.Fprintln(w, "Recommended Actions:")
	for _, a := range r.Actions {
		fmt.Fprintf(w, "  • %s\n", a)
	}

	if out.Questions > 0 {
		fmt.Fprintf(w, "\nAnswered %d of %d questions (policy %s", out.Answered, out.Questions, out.Policy)
		if out.EarlyExit {
			fmt.Fprint(w, ", stopped at a red flag")
		}
		fmt.Fprintln(w, ")")
	}
	return nil
}
