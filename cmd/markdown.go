package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// resultMarkdown formats a check result as a Markdown document.
func resultMarkdown(out *checkOutput) string {
	r := out.Result
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", r.Level.Icon(), r.Title)
	fmt.Fprintf(&b, "**%s**: %s\n\n", r.Level.Label(), r.Description)
	b.WriteString("## Recommended Actions\n\n")
	for _, a := range r.Actions {
		fmt.Fprintf(&b, "- %s\n", a)
	}
	if out.Questions > 0 {
		fmt.Fprintf(&b, "\n_Answered %d of %d questions, policy `%s`._\n",
			out.Answered, out.Questions, out.Policy)
	}
	return b.String()
}

// printMarkdown renders the result for the terminal. style is a glamour
// style name; empty selects one from the terminal background.
func printMarkdown(w io.Writer, out *checkOutput, style string, width int) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(resultMarkdown(out))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}
