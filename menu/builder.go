package menu

import (
	"time"

	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/text"
)

// BuildMonth resolves the flyer's start date from its header and extracts
// the full month's menu table. It composes ResolveStartDate and
// GridExtractor.ExtractMonth; see those for the individual contracts.
//
// The returned price errors are non-fatal: the table is complete, with the
// affected slots carrying no price. A header parse failure returns a nil
// table and an error wrapping [ErrHeaderParse].
func BuildMonth(store *model.TokenStore, tpl layout.Template, reference time.Time) (*model.MenuTable, []*PriceError, error) {
	ex := text.NewExtractor(store)

	start, err := ResolveStartDate(ex, tpl, reference)
	if err != nil {
		return nil, nil, err
	}

	table, priceErrs := NewGridExtractor(tpl).ExtractMonth(store, start)
	return table, priceErrs, nil
}
