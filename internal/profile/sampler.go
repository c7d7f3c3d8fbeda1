package profile

import (
	"math/rand"

	"github.com/fieldloom/datadoc/internal/dataset"
)

// Head returns the first n non-null values of the column in original order.
// Pure and restartable: callers may sample the same column repeatedly.
func Head(col *dataset.Column, n int) []string {
	vals := col.NonNull()
	if n > len(vals) {
		n = len(vals)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, vals[:n])
	return out
}

// Random draws min(n, non-null count) values without replacement from the
// column. Elements are float64 for numeric columns and string otherwise.
// The draw uses the process-global, unseeded RNG: sections built from it are
// expected to differ between runs.
func Random(col *dataset.Column, n int) []any {
	total := col.NonNullCount()
	if n > total {
		n = total
	}
	if n <= 0 {
		return nil
	}
	perm := rand.Perm(total)
	vals := col.NonNull()
	nums := col.Numbers()
	out := make([]any, n)
	for i := 0; i < n; i++ {
		j := perm[i]
		if col.Kind == dataset.KindNumeric {
			out[i] = nums[j]
		} else {
			out[i] = vals[j]
		}
	}
	return out
}
