package report

import (
	"encoding/json"

	"github.com/datatug/repostat/pkg/scanner"
)

// JSON renders the structured record: a field-for-field serialization of
// the scan result with raw byte counts only. Consumers that want
// human-readable values recompute them from the raw numbers.
func JSON(r *scanner.Result) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
