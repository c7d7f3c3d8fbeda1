// Package profile classifies dataset columns and gathers the per-column
// facts that feed the documentation report.
package profile

// Category is the semantic classification assigned to a column. The set is
// closed and categories are mutually exclusive.
type Category string

const (
	CategoryNestedJSON      Category = "Nested JSON"
	CategoryBoolean         Category = "Boolean"
	CategoryDiscreteNumeric Category = "Discrete Numeric"
	CategoryQuantDiscrete   Category = "Quantitative (Discrete)"
	CategoryQuantContinuous Category = "Quantitative (Continuous)"
	CategoryCategorical     Category = "Categorical"
	CategoryText            Category = "Text"
	CategoryDatetime        Category = "Datetime"
	CategoryUnknown         Category = "Unknown"
)

// Options holds the tunable profiling boundaries.
type Options struct {
	// DistinctThreshold separates enumerable from open domains. Applied with
	// strict <: a column with threshold-1 distinct values is enumerable.
	DistinctThreshold int
	// SniffDepth bounds how many leading non-null values the
	// nested-structure detector inspects.
	SniffDepth int
	// SampleSize is the random-sample size cap for report sections.
	SampleSize int
}

// DefaultOptions returns the observed production defaults.
func DefaultOptions() Options {
	return Options{DistinctThreshold: 20, SniffDepth: 10, SampleSize: 5}
}

// Detail is one AdditionalInfo value. Each entry key always carries the same
// concrete shape, so the renderer never needs runtime type sniffing beyond
// the Inline split.
type Detail interface {
	// Inline reports whether the value renders on the bullet line itself
	// rather than as a fenced JSON block.
	Inline() bool
	// Value returns the JSON-serializable form of the detail.
	Value() any
}

// Count is a scalar count (missing values, unique count).
type Count int

func (Count) Inline() bool { return true }
func (c Count) Value() any { return int(c) }

// NumberList is a sorted list of distinct numeric values.
type NumberList []float64

func (NumberList) Inline() bool { return false }
func (l NumberList) Value() any { return []float64(l) }

// StringList is a list of distinct string values in first-seen order.
type StringList []string

func (StringList) Inline() bool { return false }
func (l StringList) Value() any { return []string(l) }

// Samples is a randomly drawn value list; elements are float64 for numeric
// columns and string otherwise.
type Samples []any

func (Samples) Inline() bool { return false }
func (s Samples) Value() any { return []any(s) }

// JSONValue wraps a structured value parsed from a nested-JSON column.
type JSONValue struct{ V any }

func (JSONValue) Inline() bool { return false }
func (j JSONValue) Value() any { return j.V }

// Entry is one AdditionalInfo item; entries keep insertion order.
type Entry struct {
	Key    string
	Detail Detail
}

// Profile is the complete documentation record for one column.
type Profile struct {
	FieldName       string
	Definition      string
	CurrentType     string
	RecommendedType string
	Category        Category
	AdditionalInfo  []Entry
}
