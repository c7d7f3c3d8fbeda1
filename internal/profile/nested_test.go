package profile

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDetectNestedFirstValueParses(t *testing.T) {
	c := col(t, "payload", `  {"a": 1} `, "plain")
	got := DetectNested(c, 10)
	if !got.Detected {
		t.Fatalf("not detected")
	}
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(got.Sample, want) {
		t.Fatalf("sample = %#v, want %#v", got.Sample, want)
	}
}

func TestDetectNestedSkipsBadCandidates(t *testing.T) {
	c := col(t, "payload", "{broken", `{"bad": }`, `[1, 2, 3]`)
	got := DetectNested(c, 10)
	if !got.Detected {
		t.Fatalf("not detected")
	}
	want := []any{float64(1), float64(2), float64(3)}
	if !reflect.DeepEqual(got.Sample, want) {
		t.Fatalf("sample = %#v", got.Sample)
	}
}

func TestDetectNestedBoundedScan(t *testing.T) {
	cells := make([]string, 11)
	for i := 0; i < 10; i++ {
		cells[i] = fmt.Sprintf("plain-%d", i)
	}
	cells[10] = `{"late": true}`
	c := col(t, "payload", cells...)
	if got := DetectNested(c, 10); got.Detected {
		t.Fatalf("scan should stop before value 11")
	}
	if got := DetectNested(c, 11); !got.Detected {
		t.Fatalf("deeper scan should find it")
	}
}

func TestDetectNestedSkipsNulls(t *testing.T) {
	c := col(t, "payload", "", "", `{"a": 1}`)
	if got := DetectNested(c, 10); !got.Detected {
		t.Fatalf("nulls must not consume the scan budget")
	}
}

func TestDetectNestedNoCandidates(t *testing.T) {
	c := col(t, "words", "alpha", "beta")
	if got := DetectNested(c, 10); got.Detected {
		t.Fatalf("detected = true for plain strings")
	}
}

func TestHeadSampler(t *testing.T) {
	c := col(t, "v", "", "a", "b", "", "c", "d")
	if got := Head(c, 3); len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("head = %v", got)
	}
	// Restartable: a second call sees the same prefix.
	if got := Head(c, 2); len(got) != 2 || got[1] != "b" {
		t.Fatalf("second head = %v", got)
	}
	if got := Head(c, 10); len(got) != 4 {
		t.Fatalf("head beyond len = %v", got)
	}
}

func TestRandomSamplerBounds(t *testing.T) {
	c := col(t, "v", "a", "b", "c")
	got := Random(c, 5)
	if len(got) != 3 {
		t.Fatalf("sample size = %d, want 3", len(got))
	}
	// Without replacement: all drawn values are distinct members.
	seen := map[any]bool{}
	for _, v := range got {
		if seen[v] {
			t.Fatalf("duplicate draw %v", v)
		}
		seen[v] = true
	}
	empty := col(t, "none", "", "")
	if got := Random(empty, 5); got != nil {
		t.Fatalf("empty column sample = %v", got)
	}
}

func TestRandomSamplerNumericElements(t *testing.T) {
	c := col(t, "n", "1", "2", "3")
	for _, v := range Random(c, 3) {
		if _, ok := v.(float64); !ok {
			t.Fatalf("numeric sample element %T", v)
		}
	}
}
