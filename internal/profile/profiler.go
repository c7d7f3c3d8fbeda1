package profile

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fieldloom/datadoc/internal/dataset"
	"github.com/fieldloom/datadoc/internal/dictionary"
)

// Profiler turns dataset columns into documentation profiles. The definition
// map and options are supplied once and read-only, so columns can be
// profiled concurrently.
type Profiler struct {
	defs dictionary.Map
	opts Options
}

func New(defs dictionary.Map, opts Options) *Profiler {
	return &Profiler{defs: defs, opts: opts}
}

// Column builds the profile for a single column: definition lookup,
// nested-structure sniff, classification, then fact collection. There are no
// error paths; every column lands in exactly one category.
func (p *Profiler) Column(col *dataset.Column) Profile {
	var nested NestedResult
	if col.Kind == dataset.KindString {
		nested = DetectNested(col, p.opts.SniffDepth)
	}
	c := Classify(col, nested, p.opts)
	return Profile{
		FieldName:       col.Name,
		Definition:      p.defs.Definition(col.Name),
		CurrentType:     col.Kind.String(),
		RecommendedType: c.Recommended,
		Category:        c.Category,
		AdditionalInfo:  Collect(col, c, nested, p.opts),
	}
}

// Run profiles every column of the dataset. Columns share no mutable state,
// so by default they run on a bounded worker group; results are written into
// an index-addressed slice so output order always matches column order.
// sequential forces the single-goroutine path.
func (p *Profiler) Run(ds *dataset.Dataset, sequential bool) []Profile {
	out := make([]Profile, len(ds.Columns))
	if sequential {
		for i, col := range ds.Columns {
			out[i] = p.Column(col)
		}
		return out
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, col := range ds.Columns {
		i, col := i, col
		g.Go(func() error {
			out[i] = p.Column(col)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	return out
}
