package dataset

import (
	"strconv"
	"strings"
	"time"
)

// Kind is the declared in-memory representation of a Column.
type Kind int

const (
	KindUnknown Kind = iota
	KindNumeric
	KindString
	KindDatetime
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindString:
		return "string"
	case KindDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Column is a named, ordered sequence of values sharing one representation.
// A cell that is empty after trimming counts as null.
type Column struct {
	Name string
	Kind Kind

	cells  []string
	nulls  []bool
	values []string  // non-null cells, original order
	nums   []float64 // parsed values aligned with values; numeric columns only
}

// NewColumn trims the raw cells, computes the null mask, and infers the
// representation: numeric if every non-null cell parses as a number,
// datetime if every non-null cell matches a known layout, unknown if the
// column has no non-null cells at all, string otherwise.
func NewColumn(name string, cells []string) *Column {
	c := &Column{
		Name:  name,
		cells: make([]string, len(cells)),
		nulls: make([]bool, len(cells)),
	}
	numCnt, dtCnt := 0, 0
	var nums []float64
	for i, raw := range cells {
		v := strings.TrimSpace(raw)
		c.cells[i] = v
		if v == "" {
			c.nulls[i] = true
			continue
		}
		c.values = append(c.values, v)
		if x, ok := parseNumber(v); ok {
			numCnt++
			nums = append(nums, x)
		} else if _, ok := parseTimeMaybe(v); ok {
			dtCnt++
		}
	}
	switch {
	case len(c.values) == 0:
		c.Kind = KindUnknown
	case numCnt == len(c.values):
		c.Kind = KindNumeric
		c.nums = nums
	case dtCnt == len(c.values):
		c.Kind = KindDatetime
	default:
		c.Kind = KindString
	}
	return c
}

// Len returns the total number of cells, nulls included.
func (c *Column) Len() int { return len(c.cells) }

// MissingCount returns the number of null cells.
func (c *Column) MissingCount() int { return len(c.cells) - len(c.values) }

// NonNullCount returns the number of non-null cells.
func (c *Column) NonNullCount() int { return len(c.values) }

// NonNull returns the non-null values in original order. The caller must not
// mutate the returned slice.
func (c *Column) NonNull() []string { return c.values }

// Numbers returns the parsed non-null values of a numeric column, aligned
// with NonNull. It is nil for non-numeric columns.
func (c *Column) Numbers() []float64 { return c.nums }

// Value returns the trimmed cell at row i ("" when null).
func (c *Column) Value(i int) string { return c.cells[i] }

// IsNull reports whether the cell at row i is null.
func (c *Column) IsNull(i int) bool { return c.nulls[i] }

// Dataset is an ordered sequence of named columns loaded from one source
// file. Column order is the order fields appear in the report.
type Dataset struct {
	Name    string
	Columns []*Column
}

// Column returns the column with the given name, or nil.
func (d *Dataset) Column(name string) *Column {
	for _, c := range d.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseTimeMaybe(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
		"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fromRows builds a Dataset from a header row plus data rows. Short rows are
// padded with nulls; cells beyond the header are dropped.
func fromRows(name string, header []string, rows [][]string) *Dataset {
	ncol := len(header)
	cells := make([][]string, ncol)
	for _, rec := range rows {
		for j := 0; j < ncol; j++ {
			v := ""
			if j < len(rec) {
				v = rec[j]
			}
			cells[j] = append(cells[j], v)
		}
	}
	ds := &Dataset{Name: name, Columns: make([]*Column, ncol)}
	for j := 0; j < ncol; j++ {
		ds.Columns[j] = NewColumn(strings.TrimSpace(header[j]), cells[j])
	}
	return ds
}
