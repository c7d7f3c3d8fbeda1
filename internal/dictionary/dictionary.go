// Package dictionary builds the field→definition lookup from a data
// dictionary file loaded as a second dataset.
package dictionary

import (
	"fmt"
	"strings"

	"github.com/fieldloom/datadoc/internal/dataset"
)

// Placeholder is returned for fields without an authored definition.
const Placeholder = "No description provided."

// keyColumnName is the conventional name of the field-name column. When the
// dictionary has no such column, its first column is used instead.
const keyColumnName = "Field"

// Map resolves field names to human-authored definitions.
type Map map[string]string

// MissingColumnError reports that the caller-named description column does
// not exist in the dictionary file.
type MissingColumnError struct {
	Source    string
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("description column %q not found in %s (available: %s)",
		e.Column, e.Source, strings.Join(e.Available, ", "))
}

// Build creates the definition map from a loaded dictionary dataset. Rows
// with a null key cell or a null definition cell are skipped; later rows
// overwrite earlier ones for the same field name.
func Build(ds *dataset.Dataset, descColumn string) (Map, error) {
	descCol := ds.Column(descColumn)
	if descCol == nil {
		return nil, &MissingColumnError{Source: ds.Name, Column: descColumn, Available: ds.ColumnNames()}
	}
	keyCol := ds.Column(keyColumnName)
	if keyCol == nil && len(ds.Columns) > 0 {
		keyCol = ds.Columns[0]
	}
	m := make(Map)
	if keyCol == nil {
		return m, nil
	}
	for i := 0; i < keyCol.Len() && i < descCol.Len(); i++ {
		if keyCol.IsNull(i) || descCol.IsNull(i) {
			continue
		}
		m[keyCol.Value(i)] = descCol.Value(i)
	}
	return m, nil
}

// Definition returns the authored definition for a field, or Placeholder on
// a miss. Misses are never errors.
func (m Map) Definition(field string) string {
	if def, ok := m[field]; ok {
		return def
	}
	return Placeholder
}
