// Package output renders the populated roadshow region for review.
package output

import (
	"encoding/json"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
)

// ToJSON serializes a preview.
func ToJSON(p *models.Preview, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(p, "", "  ")
	}
	return json.Marshal(p)
}
