package profile

import (
	"strings"

	"github.com/fieldloom/datadoc/internal/dataset"
)

// Collect builds the ordered AdditionalInfo entries for a classified column.
// The missing-count entry is always first; category-specific entries follow;
// the random-sample entry, when it applies, is always last.
func Collect(col *dataset.Column, c Classification, nested NestedResult, opts Options) []Entry {
	entries := []Entry{{Key: "Missing values", Detail: Count(col.MissingCount())}}

	switch c.Category {
	case CategoryNestedJSON:
		entries = append(entries, Entry{Key: "Sample JSON", Detail: JSONValue{V: nested.Sample}})
	case CategoryDiscreteNumeric:
		entries = append(entries, Entry{Key: "Unique values", Detail: NumberList(distinctFloats(col.Numbers()))})
	case CategoryCategorical:
		entries = append(entries, Entry{Key: "Unique values", Detail: StringList(distinctStrings(col.NonNull()))})
	case CategoryQuantDiscrete, CategoryQuantContinuous:
		entries = append(entries, Entry{Key: "Summary", Detail: Describe(col.Numbers())})
	case CategoryText:
		entries = append(entries, Entry{Key: "Unique count", Detail: Count(len(distinctStrings(col.NonNull())))})
	}

	// The random sample is additive and independent of the classification
	// branch: every non-Categorical column gets one, and id-like columns get
	// one regardless of category. Columns with no values skip the draw.
	if c.Category != CategoryCategorical || strings.Contains(strings.ToLower(col.Name), "id") {
		if col.NonNullCount() > 0 {
			entries = append(entries, Entry{Key: "Random Samples", Detail: Samples(Random(col, opts.SampleSize))})
		}
	}
	return entries
}
