// Package templates analyzes template variable references across script
// documents and validates template names.
package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateName checks that a template name is identifier-shaped. The
// name is embedded literally into {{name}} placeholders, so anything
// else would never match a prompt.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid template name %q", name)
	}
	return nil
}

// ComputeUsage scans every script for shots whose prompt contains the
// literal placeholder {{name}}. Matching is exact: no whitespace
// tolerance, no partial names. Scripts without a match are omitted, and
// an unused name yields an empty (non-nil) usage list, which callers
// must not treat as an error.
func ComputeUsage(name string, scripts []domain.Script) domain.TemplateUsage {
	placeholder := "{{" + name + "}}"
	usage := domain.TemplateUsage{
		TemplateName: name,
		Usages:       []domain.ScriptUsage{},
	}

	for _, script := range scripts {
		if len(script.Shots) == 0 {
			continue
		}
		var indices []int
		for i, shot := range script.Shots {
			if strings.Contains(shot.Prompt, placeholder) {
				indices = append(indices, i+1)
			}
		}
		if len(indices) == 0 {
			continue
		}
		usage.Usages = append(usage.Usages, domain.ScriptUsage{
			ScriptID:    script.ID,
			ScriptTitle: script.Title,
			ShotIndices: indices,
			AllShots:    len(indices) == len(script.Shots),
		})
	}
	return usage
}

// FormatUsage renders a usage report as human-readable lines, one per
// referencing script.
func FormatUsage(usage domain.TemplateUsage) []string {
	if len(usage.Usages) == 0 {
		return []string{"Not used in any script"}
	}

	lines := make([]string, 0, len(usage.Usages))
	for _, u := range usage.Usages {
		if u.AllShots {
			lines = append(lines, fmt.Sprintf("Used in: %s (All)", u.ScriptTitle))
			continue
		}
		indices := append([]int(nil), u.ShotIndices...)
		sort.Ints(indices)
		parts := make([]string, len(indices))
		for i, n := range indices {
			parts[i] = fmt.Sprintf("%d", n)
		}
		lines = append(lines, fmt.Sprintf("Used in: %s (Shots %s)", u.ScriptTitle, strings.Join(parts, ", ")))
	}
	return lines
}
