package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog document major version this build understands.
const SupportedMajor = "v1"

// canonicalVersion returns v with a leading "v", as semver expects.
func canonicalVersion(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// validate performs all structural checks on the given categories.
// Returns a combined error describing all problems found, or nil if valid.
func validate(version string, categories []Category) error {
	var errs []string

	sv := canonicalVersion(version)
	switch {
	case !semver.IsValid(sv):
		errs = append(errs, fmt.Sprintf("invalid catalog version: %q", version))
	case semver.Major(sv) != SupportedMajor:
		errs = append(errs, fmt.Sprintf("unsupported catalog version %q (want %s.x.y)", version, SupportedMajor))
	}

	if len(categories) == 0 {
		errs = append(errs, "catalog has no categories")
	}

	catIDs := make(map[string]bool, len(categories))
	owner := make(map[string]string)

	for _, c := range categories {
		if c.ID == "" {
			errs = append(errs, "category with empty ID")
		} else if catIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		catIDs[c.ID] = true

		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("category %q has no name", c.ID))
		}
		if len(c.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no questions", c.ID))
		}

		local := make(map[string]bool, len(c.Questions))
		for i, q := range c.Questions {
			if q.ID == "" {
				errs = append(errs, fmt.Sprintf("category %q question %d has empty ID", c.ID, i))
				continue
			}
			if q.Text == "" {
				errs = append(errs, fmt.Sprintf("category %q question %q has no text", c.ID, q.ID))
			}
			if local[q.ID] {
				errs = append(errs, fmt.Sprintf("category %q has duplicate question ID: %q", c.ID, q.ID))
				continue
			}
			local[q.ID] = true
			if other, ok := owner[q.ID]; ok && other != c.ID {
				errs = append(errs, fmt.Sprintf("question ID %q appears in both %q and %q", q.ID, other, c.ID))
				continue
			}
			owner[q.ID] = c.ID
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
