package export

import (
	"encoding/json"
	"fmt"
)

// MarshalJSONLD serialises a structured-data record with two-space
// indent and a trailing newline, matching the published file format.
func MarshalJSONLD(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json-ld: %w", err)
	}
	return append(out, '\n'), nil
}
