// Package value defines the runtime's user-facing values: series views with a
// datatype tag, single characters, integers, words, bitsets, and the none
// sentinel.
//
// A View is a lightweight (series, index, kind) triple copied by value.
// Multiple views may alias one series at different offsets; mutating through
// one view is visible through every other. The kind tag selects which generic
// verb branch applies and how the value is molded for display. Datatype
// behavior that differs per tag (mold delimiters, the widen-forbidden rule
// for binary) lives here as small per-kind hooks; the shared mechanics live
// in the series, compare, search, and mutate packages.
package value
