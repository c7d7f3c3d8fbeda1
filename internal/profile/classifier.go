package profile

import (
	"math"
	"sort"

	"github.com/fieldloom/datadoc/internal/dataset"
)

// Classification pairs the assigned category with a storage-type suggestion.
type Classification struct {
	Category    Category
	Recommended string
}

// Signed integer storage boundaries for smallest-fit recommendations.
const (
	smallintMin = -32768
	smallintMax = 32767
	intMin      = -2147483648
	intMax      = 2147483647
)

// view bundles the facts the classification rules consult.
type view struct {
	col    *dataset.Column
	nested NestedResult
	opts   Options
}

// rule is one predicate/result pair. Rules run in declaration order and the
// first match wins; the order is part of the contract.
type rule struct {
	name  string
	apply func(v *view) (Classification, bool)
}

var rules = []rule{
	{"empty", classifyEmpty},
	{"nested-json", classifyNested},
	{"numeric", classifyNumeric},
	{"string", classifyString},
	{"datetime", classifyDatetime},
	{"fallback", classifyFallback},
}

// Classify assigns exactly one category to the column. The rule chain is
// exhaustive, so classification always terminates in an assignment.
func Classify(col *dataset.Column, nested NestedResult, opts Options) Classification {
	v := &view{col: col, nested: nested, opts: opts}
	for _, r := range rules {
		if c, ok := r.apply(v); ok {
			return c
		}
	}
	// Unreachable: the fallback rule always matches.
	return Classification{Category: CategoryUnknown, Recommended: col.Kind.String()}
}

// classifyEmpty handles columns with zero non-null values before any other
// rule can trip over them.
func classifyEmpty(v *view) (Classification, bool) {
	if v.col.NonNullCount() > 0 {
		return Classification{}, false
	}
	return Classification{Category: CategoryUnknown, Recommended: v.col.Kind.String()}, true
}

func classifyNested(v *view) (Classification, bool) {
	if !v.nested.Detected {
		return Classification{}, false
	}
	return Classification{Category: CategoryNestedJSON, Recommended: v.col.Kind.String()}, true
}

func classifyNumeric(v *view) (Classification, bool) {
	if v.col.Kind != dataset.KindNumeric {
		return Classification{}, false
	}
	nums := v.col.Numbers()
	distinct := distinctFloats(nums)
	if len(distinct) == 2 && boolDomain(distinct) {
		return Classification{Category: CategoryBoolean, Recommended: "bool"}, true
	}
	for _, x := range nums {
		if x != math.Trunc(x) {
			return Classification{Category: CategoryQuantContinuous, Recommended: "float"}, true
		}
	}
	mn, mx := nums[0], nums[0]
	for _, x := range nums[1:] {
		if x < mn {
			mn = x
		}
		if x > mx {
			mx = x
		}
	}
	rec := "bigint"
	switch {
	case mn >= smallintMin && mx <= smallintMax:
		rec = "smallint"
	case mn >= intMin && mx <= intMax:
		rec = "int"
	}
	if len(distinct) < v.opts.DistinctThreshold {
		return Classification{Category: CategoryDiscreteNumeric, Recommended: rec}, true
	}
	return Classification{Category: CategoryQuantDiscrete, Recommended: rec}, true
}

func classifyString(v *view) (Classification, bool) {
	if v.col.Kind != dataset.KindString {
		return Classification{}, false
	}
	if len(distinctStrings(v.col.NonNull())) < v.opts.DistinctThreshold {
		return Classification{Category: CategoryCategorical, Recommended: "category"}, true
	}
	return Classification{Category: CategoryText, Recommended: "text"}, true
}

func classifyDatetime(v *view) (Classification, bool) {
	if v.col.Kind != dataset.KindDatetime {
		return Classification{}, false
	}
	return Classification{Category: CategoryDatetime, Recommended: "datetime"}, true
}

func classifyFallback(v *view) (Classification, bool) {
	return Classification{Category: CategoryUnknown, Recommended: v.col.Kind.String()}, true
}

func boolDomain(distinct []float64) bool {
	for _, x := range distinct {
		if x != 0 && x != 1 {
			return false
		}
	}
	return true
}

// distinctFloats returns the distinct values sorted ascending.
func distinctFloats(vals []float64) []float64 {
	seen := make(map[float64]struct{}, len(vals))
	var out []float64
	for _, x := range vals {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	sort.Float64s(out)
	return out
}

// distinctStrings returns the distinct values in first-seen order.
func distinctStrings(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	var out []string
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
