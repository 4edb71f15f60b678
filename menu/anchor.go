package menu

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/text"
)

// headerLayout parses dates of the form "2026年3月15日". Month and day may
// be one or two digits, matching how the flyer prints them.
const headerLayout = "2006年1月2日"

// ResolveStartDate reads the flyer's "M月D日" header text and resolves it to
// a concrete calendar date. The flyer always describes the month following
// the reference instant, so the year component of reference + 1 month is
// used; a December run therefore dates a January flyer with the next year.
//
// The returned error wraps [ErrHeaderParse] when the header text cannot be
// parsed. That is fatal for the whole extraction: there is no fallback.
func ResolveStartDate(ex *text.Extractor, tpl layout.Template, reference time.Time) (time.Time, error) {
	monthDay := strings.TrimSpace(cleanCell(ex.Region(tpl.HeaderRegion())))
	if monthDay == "" {
		return time.Time{}, fmt.Errorf("menu: header region is empty: %w", ErrHeaderParse)
	}

	year := reference.AddDate(0, 1, 0).Year()

	start, err := time.Parse(headerLayout, fmt.Sprintf("%d年%s", year, monthDay))
	if err != nil {
		return time.Time{}, fmt.Errorf("menu: header text %q: %w", monthDay, ErrHeaderParse)
	}
	return start, nil
}
