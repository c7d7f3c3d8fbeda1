package profile

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/fieldloom/datadoc/internal/dataset"
)

func collect(t *testing.T, c *dataset.Column) []Entry {
	t.Helper()
	opts := DefaultOptions()
	var nested NestedResult
	if c.Kind == dataset.KindString {
		nested = DetectNested(c, opts.SniffDepth)
	}
	return Collect(c, Classify(c, nested, opts), nested, opts)
}

func keys(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

func TestCollectDiscreteNumeric(t *testing.T) {
	entries := collect(t, col(t, "level", "3", "1", "2", "", "1"))
	want := []string{"Missing values", "Unique values", "Random Samples"}
	if !reflect.DeepEqual(keys(entries), want) {
		t.Fatalf("keys = %v", keys(entries))
	}
	if got := entries[0].Detail.(Count); got != 1 {
		t.Fatalf("missing = %d", got)
	}
	uniq := entries[1].Detail.(NumberList)
	if !reflect.DeepEqual([]float64(uniq), []float64{1, 2, 3}) {
		t.Fatalf("unique values not sorted ascending: %v", uniq)
	}
}

func TestCollectCategoricalKeepsFirstSeenOrder(t *testing.T) {
	entries := collect(t, col(t, "color", "red", "blue", "red", "green"))
	want := []string{"Missing values", "Unique values"}
	if !reflect.DeepEqual(keys(entries), want) {
		t.Fatalf("keys = %v (categorical must not get a random sample)", keys(entries))
	}
	uniq := entries[1].Detail.(StringList)
	if !reflect.DeepEqual([]string(uniq), []string{"red", "blue", "green"}) {
		t.Fatalf("unique values = %v, want first-seen order", uniq)
	}
}

func TestCollectCategoricalIDColumnGetsSample(t *testing.T) {
	entries := collect(t, col(t, "status_ID", "new", "old", "new"))
	want := []string{"Missing values", "Unique values", "Random Samples"}
	if !reflect.DeepEqual(keys(entries), want) {
		t.Fatalf("keys = %v (id-named columns always get a sample)", keys(entries))
	}
}

func TestCollectTextIDColumn(t *testing.T) {
	cells := make([]string, 25)
	for i := range cells {
		cells[i] = fmt.Sprintf("user-%04d", i)
	}
	c := col(t, "user_id", cells...)
	entries := collect(t, c)
	want := []string{"Missing values", "Unique count", "Random Samples"}
	if !reflect.DeepEqual(keys(entries), want) {
		t.Fatalf("keys = %v", keys(entries))
	}
	if got := entries[1].Detail.(Count); got != 25 {
		t.Fatalf("unique count = %d", got)
	}
	samples := entries[2].Detail.(Samples)
	if len(samples) != 5 {
		t.Fatalf("sample size = %d, want 5", len(samples))
	}
}

func TestCollectQuantitativeSummary(t *testing.T) {
	entries := collect(t, col(t, "temp", "1.5", "2.5", "3.5"))
	want := []string{"Missing values", "Summary", "Random Samples"}
	if !reflect.DeepEqual(keys(entries), want) {
		t.Fatalf("keys = %v", keys(entries))
	}
	s := entries[1].Detail.(Stats)
	if s.Count != 3 || s.Mean != 2.5 {
		t.Fatalf("summary = %+v", s)
	}
}

func TestCollectNestedJSONSample(t *testing.T) {
	entries := collect(t, col(t, "payload", `{"a": 1}`))
	want := []string{"Missing values", "Sample JSON", "Random Samples"}
	if !reflect.DeepEqual(keys(entries), want) {
		t.Fatalf("keys = %v", keys(entries))
	}
	jv := entries[1].Detail.(JSONValue)
	if !reflect.DeepEqual(jv.V, map[string]any{"a": float64(1)}) {
		t.Fatalf("sample json = %#v", jv.V)
	}
}

func TestCollectEmptyColumnSkipsDraw(t *testing.T) {
	entries := collect(t, col(t, "ghost", "", "", ""))
	if len(entries) != 1 || entries[0].Key != "Missing values" {
		t.Fatalf("entries = %v, want only the missing count", keys(entries))
	}
	if got := entries[0].Detail.(Count); got != 3 {
		t.Fatalf("missing = %d", got)
	}
}

func TestCollectSampleSizeCappedByValues(t *testing.T) {
	entries := collect(t, col(t, "pair", "10.5", "20.5"))
	last := entries[len(entries)-1]
	if last.Key != "Random Samples" {
		t.Fatalf("last entry = %s", last.Key)
	}
	if got := len(last.Detail.(Samples)); got != 2 {
		t.Fatalf("sample size = %d, want min(5, 2)", got)
	}
}
