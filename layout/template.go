package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/menugrid/model"
)

// Grid dimensions of the flyer template. One flyer covers a full month:
// five week rows of five weekday columns, each day holding up to five menu lines.
const (
	Weeks    = 5
	Weekdays = 5
	Lines    = 5
)

// Template describes the flyer's fixed grid geometry in normalized page
// coordinates. All offsets are relative to the base cell origin
// (OriginX, OriginY), which is the left-bottom anchor of week 1 / Monday's
// first menu line.
type Template struct {
	Version string `yaml:"version"`

	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`

	// WeekOffsets are the y offsets of the five week rows. The current
	// flyer prints the month in two repeating vertical bands, so weeks 4
	// and 5 reuse the bands of weeks 2 and 3. Checked against the printed
	// flyer; do not replace with a monotonic progression.
	WeekOffsets []float64 `yaml:"week_offsets"`

	// DayOffsets are the x offsets of the five weekday columns.
	DayOffsets []float64 `yaml:"day_offsets"`

	// LineOffsets are the y offsets of the five menu line slots in a day.
	LineOffsets []float64 `yaml:"line_offsets"`

	// LineHeight is the extraction height of a single line slot. It is
	// taller than the slot pitch so anchors sitting low in a line are
	// still caught.
	LineHeight float64 `yaml:"line_height"`

	// NameWidth is the width of a line's item-name region. ProbeWidth is
	// the slightly wider region used only to test whether a day has any
	// menu at all.
	NameWidth  float64 `yaml:"name_width"`
	ProbeWidth float64 `yaml:"probe_width"`

	// PriceOffset is the x distance from the day's origin to the price
	// column; PriceWidth is the price region's width.
	PriceOffset float64 `yaml:"price_offset"`
	PriceWidth  float64 `yaml:"price_width"`

	// Header is the region holding the flyer's "M月D日" start-date text.
	Header model.Region `yaml:"header"`
}

// Default returns the geometry of the current flyer template.
func Default() Template {
	return Template{
		Version:     "2023.1",
		OriginX:     0.02,
		OriginY:     0.16,
		WeekOffsets: []float64{0, 0.28, 0.56, 0.28, 0.56},
		DayOffsets:  []float64{0, 0.19, 0.38, 0.57, 0.76},
		LineOffsets: []float64{0, 0.024, 0.048, 0.072, 0.096},
		LineHeight:  0.03,
		NameWidth:   0.14,
		ProbeWidth:  0.15,
		PriceOffset: 0.17,
		PriceWidth:  0.02,
		Header:      model.NewRegion(0.07, 0.14, 0.07, 0.03),
	}
}

// Load reads a template from a YAML file and validates it.
func Load(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("layout: reading template file %s: %w", path, err)
	}

	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return Template{}, fmt.Errorf("layout: parsing template file %s: %w", path, err)
	}

	if err := tpl.Validate(); err != nil {
		return Template{}, err
	}
	return tpl, nil
}

// Validate checks that the template describes a complete grid.
func (t Template) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("layout: template has no version")
	}
	if len(t.WeekOffsets) != Weeks {
		return fmt.Errorf("layout: template %s has %d week offsets, want %d", t.Version, len(t.WeekOffsets), Weeks)
	}
	if len(t.DayOffsets) != Weekdays {
		return fmt.Errorf("layout: template %s has %d day offsets, want %d", t.Version, len(t.DayOffsets), Weekdays)
	}
	if len(t.LineOffsets) != Lines {
		return fmt.Errorf("layout: template %s has %d line offsets, want %d", t.Version, len(t.LineOffsets), Lines)
	}
	if t.LineHeight <= 0 || t.NameWidth <= 0 || t.ProbeWidth <= 0 || t.PriceWidth <= 0 {
		return fmt.Errorf("layout: template %s has non-positive region dimensions", t.Version)
	}
	if !t.Header.IsValid() {
		return fmt.Errorf("layout: template %s has an invalid header region", t.Version)
	}
	return nil
}

// dayOrigin returns the left-bottom anchor of a day's first line.
func (t Template) dayOrigin(week, day int) (x, y float64) {
	return t.OriginX + t.DayOffsets[day], t.OriginY + t.WeekOffsets[week]
}

// HeaderRegion returns the region holding the flyer's start-date text.
func (t Template) HeaderRegion() model.Region {
	return t.Header
}

// ProbeRegion returns the widened top-line region used to decide whether
// the given day has a menu at all.
func (t Template) ProbeRegion(week, day int) model.Region {
	x, y := t.dayOrigin(week, day)
	return model.NewRegion(x, y, t.ProbeWidth, t.LineHeight)
}

// NameRegion returns the item-name region of one line slot.
func (t Template) NameRegion(week, day, line int) model.Region {
	x, y := t.dayOrigin(week, day)
	return model.NewRegion(x, y+t.LineOffsets[line], t.NameWidth, t.LineHeight)
}

// PriceRegion returns the price region of one line slot.
func (t Template) PriceRegion(week, day, line int) model.Region {
	x, y := t.dayOrigin(week, day)
	return model.NewRegion(x+t.PriceOffset, y+t.LineOffsets[line], t.PriceWidth, t.LineHeight)
}
