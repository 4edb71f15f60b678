// Package menu turns OCR tokens into the month's dated menu table.
//
// The flyer covers the month following the run date with a fixed grid of
// five week rows by five weekday columns, each day holding up to five menu
// lines. Extraction walks that grid (see the layout package for the
// geometry), pulling each cell's text through a region extractor and
// assembling [model.MenuRow] values.
//
// A day is considered to have no menu when its top line slot extracts to
// empty text; such a day contributes zero rows. Any other day contributes
// exactly one row per line slot, blank or not, so the table retains its
// fixed per-day shape.
//
// The flyer's start date comes from a header region reading "M月D日". The
// year is not printed: the flyer always describes the month after the run
// date, so the year of run date + 1 month disambiguates it, including over
// the December to January rollover.
package menu
