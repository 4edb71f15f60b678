// Package schedule computes which calendar dates should trigger the
// recurring menu operations, respecting public holidays.
//
// Each operation nominally runs on a fixed weekday. When that weekday is a
// public holiday the operation moves to the closest earlier non-holiday
// weekday of the same ISO week, never rolling past Monday into the previous
// week. Each ISO week is resolved independently, so for every week and
// operation at most one date is flagged true; a week whose candidates are
// all holidays gets no flagged date at all.
//
// The public-holiday source is the [Calendar] capability. A holiday data
// file maintained alongside the config supplies it in production (see
// [Load]); tests use an in-memory [DateSet].
package schedule
