package text

import (
	"sort"
	"strings"

	"github.com/tsawler/menugrid/model"
)

// Extractor extracts text from a token store by region.
// The zero value is not usable; create one with NewExtractor.
type Extractor struct {
	store *model.TokenStore

	// SortByPosition orders matched tokens by (y, x) instead of relying on
	// the store's emission order. Leave false when the OCR engine emits
	// tokens in reading order, which is the documented TokenStore contract.
	SortByPosition bool
}

// NewExtractor creates an extractor over the given token store.
func NewExtractor(store *model.TokenStore) *Extractor {
	return &Extractor{store: store}
}

// Region returns the concatenated text of all tokens whose anchor falls
// inside the region, with no added separators. An empty match set yields "".
// The operation is deterministic and has no side effects, so repeated calls
// on an unmodified store return identical strings.
func (e *Extractor) Region(r model.Region) string {
	matched := e.store.InRegion(r)
	if len(matched) == 0 {
		return ""
	}

	if e.SortByPosition {
		sort.SliceStable(matched, func(i, j int) bool {
			if matched[i].Y != matched[j].Y {
				return matched[i].Y < matched[j].Y
			}
			return matched[i].X < matched[j].X
		})
	}

	var sb strings.Builder
	for _, tok := range matched {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
