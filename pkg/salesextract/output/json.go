// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/salesextract-go/pkg/salesextract"
)

// ToJSON serializes a batch result.
func ToJSON(res *salesextract.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}
