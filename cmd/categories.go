package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/symcheck/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List symptom categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCategories(cmd.OutOrStdout(), catalog.Default())
	},
}

func printCategories(w io.Writer, cat *catalog.Catalog) error {
	categories := cat.Categories()

	fmt.Fprintf(w, "%-10s  %-4s  %-20s  %9s  %9s\n",
		"ID", "Icon", "Name", "Questions", "Red flags")
	fmt.Fprintln(w, strings.Repeat("─", 60))

	for _, c := range categories {
		fmt.Fprintf(w, "%-10s  %-4s  %-20s  %9d  %9d\n",
			c.ID, c.Icon, c.Name, c.Len(), len(c.RedFlags()))
	}

	_, err := fmt.Fprintf(w, "\n%d categories (catalog %s)\n", len(categories), cat.Version())
	return err
}
