// Package report renders an ordered sequence of column profiles into a
// single Markdown document.
package report

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fieldloom/datadoc/internal/profile"
	"github.com/fieldloom/datadoc/internal/utils"
)

// Render produces the full Markdown document: title, table of contents, and
// one section per profile in input order. Rendering is a pure function of
// the profiles; the same input always yields byte-identical output.
func Render(profiles []profile.Profile) (string, error) {
	var b strings.Builder
	b.WriteString("# Data Documentation Report\n\n")

	b.WriteString("## Table of Contents\n")
	for _, p := range profiles {
		fmt.Fprintf(&b, "- [%s](#%s)\n", p.FieldName, anchor(p.FieldName))
	}
	b.WriteString("\n---\n")

	for _, p := range profiles {
		fmt.Fprintf(&b, "## %s\n\n", p.FieldName)
		fmt.Fprintf(&b, "**Definition:** %s\n\n", p.Definition)
		fmt.Fprintf(&b, "**Current Data Type:** `%s`\n\n", p.CurrentType)
		fmt.Fprintf(&b, "**Recommended Data Type:** `%s`\n\n", p.RecommendedType)
		fmt.Fprintf(&b, "**Data Category:** %s\n\n", p.Category)

		b.WriteString("**Additional Information:**\n")
		if len(p.AdditionalInfo) == 0 {
			b.WriteString("None\n")
		}
		for _, e := range p.AdditionalInfo {
			if e.Detail.Inline() {
				fmt.Fprintf(&b, "- **%s:** %v\n", e.Key, e.Detail.Value())
				continue
			}
			j, err := utils.PrettyJSON(e.Detail.Value())
			if err != nil {
				// Only reachable for values outside the detail union; an
				// implementation defect, not an input condition.
				return "", fmt.Errorf("render %s / %s: %w", p.FieldName, e.Key, err)
			}
			fmt.Fprintf(&b, "- **%s:**\n```json\n%s\n```\n", e.Key, j)
		}
		b.WriteString("\n---\n")
	}
	return b.String(), nil
}

// anchor builds a GitHub-style slug: lowercase, spaces become hyphens, and
// any rune that is not a letter, digit, hyphen or underscore is dropped.
func anchor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
