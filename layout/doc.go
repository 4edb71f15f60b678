// Package layout defines the flyer's grid geometry as a named, versioned
// template instead of literals scattered through the extraction code.
//
// A [Template] describes one physical flyer layout: where the header date
// sits, where each week row and weekday column begins, and how the five
// menu line slots of a day are stacked. [Default] returns the geometry of
// the current flyer; [Load] reads an alternative geometry from YAML so a
// printed-layout change is a config change, not a code change.
package layout
