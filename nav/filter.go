package nav

import (
	"strings"

	"github.com/moby/patternmatcher"

	"github.com/grovetools/docnav/errors"
)

// Filter keeps the entries whose slug matches patterns, preserving order.
// Patterns use .dockerignore syntax, so "eloquent*" selects and a leading
// "!" excludes. When every pattern is an exclusion, all other entries are
// kept. No patterns means no filtering.
func Filter(entries []Entry, patterns []string) ([]Entry, error) {
	if len(patterns) == 0 {
		return append([]Entry(nil), entries...), nil
	}

	onlyExclusions := true
	for _, p := range patterns {
		if !strings.HasPrefix(p, "!") {
			onlyExclusions = false
			break
		}
	}
	if onlyExclusions {
		patterns = append([]string{"*"}, patterns...)
	}

	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid slug pattern").
			WithDetail("patterns", patterns)
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := pm.MatchesOrParentMatches(e.Slug())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "match slug pattern").
				WithDetail("slug", e.Slug())
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}
