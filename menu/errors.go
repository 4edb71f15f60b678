package menu

import (
	"errors"
	"fmt"
	"time"
)

// ErrHeaderParse is returned when the header region's text cannot be parsed
// as the flyer's start date. There is no safe fallback for a misread start
// date, so this aborts the whole extraction.
var ErrHeaderParse = errors.New("header date text does not match expected pattern")

// PriceError records one price slot whose non-empty text did not parse as
// an integer. It is non-fatal to the extraction pass; the affected row is
// kept with its price marked absent so the failure stays visible for
// manual correction instead of being coerced to a silent zero.
type PriceError struct {
	Date time.Time
	Slot int // line slot index, 0-based
	Text string
}

func (e *PriceError) Error() string {
	return fmt.Sprintf("menu: invalid price %q on %s slot %d", e.Text, e.Date.Format("2006-01-02"), e.Slot)
}
