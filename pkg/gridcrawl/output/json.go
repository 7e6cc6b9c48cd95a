package output

import (
	"github.com/bytedance/sonic"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
)

// api mirrors encoding/json behaviour (sorted map keys, HTML escaping).
var api = sonic.ConfigStd

// ToJSON serializes v, indenting with two spaces when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return api.MarshalIndent(v, "", "  ")
	}
	return api.Marshal(v)
}

// SheetToJSON serializes the grids of one sheet.
func SheetToJSON(sheet *models.SheetGrids, pretty bool) ([]byte, error) {
	return ToJSON(sheet, pretty)
}
