package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// SafeWriteFile writes data to a uniquely named temp file and atomically
// renames it into place, so a failed run never leaves a partial artifact and
// concurrent runs against the same path cannot trample each other's temp
// files.
func SafeWriteFile(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// PrettyJSON marshals a value as 2-space indented JSON.
func PrettyJSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return b, nil
}
