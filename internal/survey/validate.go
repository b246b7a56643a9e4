package survey

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the definition format major version this build reads.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned when a definition declares a version
// this build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported survey definition version")

// checkVersion accepts any valid semantic version within SupportedMajor.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x.y)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

// validateDefinition performs all semantic checks on a definition.
// Returns a combined error describing all problems found, or nil if valid.
func validateDefinition(d *Definition) error {
	if err := checkVersion(d.Version); err != nil {
		return err
	}

	var errs []string

	if len(d.Categories) == 0 {
		errs = append(errs, "at least one category is required")
	}
	if len(d.Questions) == 0 {
		errs = append(errs, "at least one question is required")
	}

	catSet := make(map[CategoryID]bool, len(d.Categories))
	for _, c := range d.Categories {
		if c.ID == "" {
			errs = append(errs, "category with empty ID")
			continue
		}
		if catSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		catSet[c.ID] = true
	}

	qSet := make(map[string]bool, len(d.Questions))
	for _, q := range d.Questions {
		if q.ID == "" {
			errs = append(errs, "question with empty ID")
			continue
		}
		if qSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		qSet[q.ID] = true

		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question %q has no options", q.ID))
		}

		optSet := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			prefix := fmt.Sprintf("question %q option %q", q.ID, o.ID)
			if o.ID == "" {
				errs = append(errs, fmt.Sprintf("question %q has an option with empty ID", q.ID))
				continue
			}
			if optSet[o.ID] {
				errs = append(errs, fmt.Sprintf("question %q: duplicate option ID %q", q.ID, o.ID))
			}
			optSet[o.ID] = true

			for cat, w := range o.Weights {
				if !catSet[cat] {
					errs = append(errs, fmt.Sprintf("%s: weight for undeclared category %q", prefix, cat))
				}
				if w < 0 {
					errs = append(errs, fmt.Sprintf("%s: weight for %q must be >= 0, got %g", prefix, cat, w))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("survey definition validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
