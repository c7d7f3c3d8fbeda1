package report

import (
	"strings"
	"testing"

	"github.com/fieldloom/datadoc/internal/profile"
)

func sampleProfiles() []profile.Profile {
	return []profile.Profile{
		{
			FieldName:       "User ID",
			Definition:      "Unique user identifier",
			CurrentType:     "string",
			RecommendedType: "text",
			Category:        profile.CategoryText,
			AdditionalInfo: []profile.Entry{
				{Key: "Missing values", Detail: profile.Count(2)},
				{Key: "Unique count", Detail: profile.Count(40)},
			},
		},
		{
			FieldName:       "level",
			Definition:      "No description provided.",
			CurrentType:     "numeric",
			RecommendedType: "smallint",
			Category:        profile.CategoryDiscreteNumeric,
			AdditionalInfo: []profile.Entry{
				{Key: "Missing values", Detail: profile.Count(0)},
				{Key: "Unique values", Detail: profile.NumberList{1, 2, 3}},
			},
		},
	}
}

func TestRenderStructure(t *testing.T) {
	md, err := Render(sampleProfiles())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		"# Data Documentation Report\n",
		"## Table of Contents\n",
		"- [User ID](#user-id)\n",
		"- [level](#level)\n",
		"## User ID\n",
		"**Definition:** Unique user identifier\n",
		"**Current Data Type:** `string`\n",
		"**Recommended Data Type:** `text`\n",
		"**Data Category:** Text\n",
		"- **Missing values:** 2\n",
		"- **Unique count:** 40\n",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("missing %q in:\n%s", want, md)
		}
	}
	fenced := "- **Unique values:**\n```json\n[\n  1,\n  2,\n  3\n]\n```\n"
	if !strings.Contains(md, fenced) {
		t.Fatalf("missing fenced block in:\n%s", md)
	}
}

func TestRenderIdempotent(t *testing.T) {
	ps := sampleProfiles()
	a, err := Render(ps)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := Render(ps)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if a != b {
		t.Fatalf("rendering is not byte-identical")
	}
}

func TestRenderEmptyAdditionalInfo(t *testing.T) {
	md, err := Render([]profile.Profile{{
		FieldName: "bare", Definition: "d", CurrentType: "string",
		RecommendedType: "text", Category: profile.CategoryText,
	}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(md, "**Additional Information:**\nNone\n") {
		t.Fatalf("missing None marker in:\n%s", md)
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	md, err := Render(nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "# Data Documentation Report\n\n## Table of Contents\n\n---\n"
	if md != want {
		t.Fatalf("empty report = %q, want %q", md, want)
	}
}

func TestRenderStatsBlockKeyOrder(t *testing.T) {
	md, err := Render([]profile.Profile{{
		FieldName: "score", Definition: "d", CurrentType: "numeric",
		RecommendedType: "float", Category: profile.CategoryQuantContinuous,
		AdditionalInfo: []profile.Entry{
			{Key: "Summary", Detail: profile.Describe([]float64{1, 2, 3})},
		},
	}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Index(md, `"count"`) > strings.Index(md, `"mean"`) {
		t.Fatalf("summary keys reordered:\n%s", md)
	}
	if !strings.Contains(md, "```json\n{\n  \"count\": 3,") {
		t.Fatalf("summary block not indented as expected:\n%s", md)
	}
}

func TestAnchorSlugs(t *testing.T) {
	cases := map[string]string{
		"User ID":         "user-id",
		"plain":           "plain",
		"Total (USD)":     "total-usd",
		"snake_case_name": "snake_case_name",
		"Mixed-Case 2":    "mixed-case-2",
	}
	for in, want := range cases {
		if got := anchor(in); got != want {
			t.Fatalf("anchor(%q) = %q, want %q", in, got, want)
		}
	}
}
