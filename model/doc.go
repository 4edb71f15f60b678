// Package model provides the intermediate representation (IR) for extracted
// flyer content.
//
// This package defines the data structures shared by the extraction pipeline:
// OCR tokens with normalized page positions, the regions used to select them,
// and the menu rows produced from them.
//
// # Coordinate System
//
// All positions are normalized to the page: both axes run from 0 to 1, the
// origin is the top-left corner, and y grows downward. This matches the
// convention used by document OCR engines for normalized vertices. A token's
// anchor is the left-bottom corner of its bounding box.
//
// # Tokens
//
// The [Token] type represents one recognized word. Tokens are held by a
// [TokenStore], which preserves the OCR engine's emission order. That order
// is the on-page reading order (top-to-bottom, left-to-right) and is part of
// the store's contract: region queries return tokens in store order, so text
// concatenated from a region reads naturally.
//
// # Regions
//
// The [Region] type is a rectangle in normalized coordinates used to select
// tokens by anchor position. Boundary containment is inclusive on all sides.
//
// # Menu Data
//
// Extraction produces [MenuRow] values collected into a [MenuTable], with
// [ScheduleFlag] rows joined on by date downstream.
package model
