package profile

import (
	"encoding/json"
	"strings"

	"github.com/fieldloom/datadoc/internal/dataset"
)

// NestedResult is the outcome of the nested-structure sniff.
type NestedResult struct {
	Detected bool
	// Sample is the first value that parsed as structured data.
	Sample any
}

// DetectNested scans up to depth leading non-null values of a string column
// for serialized JSON objects or arrays. The scan is a cheap bounded sniff:
// it stops at the first value that parses and silently skips candidates that
// do not. It never reads past the first depth non-null values.
func DetectNested(col *dataset.Column, depth int) NestedResult {
	for _, raw := range Head(col, depth) {
		v := strings.TrimSpace(raw)
		object := strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}")
		array := strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]")
		if !object && !array {
			continue
		}
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			continue
		}
		return NestedResult{Detected: true, Sample: parsed}
	}
	return NestedResult{}
}
