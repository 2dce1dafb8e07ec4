// Package series provides the resizable, width-tagged storage block that
// underlies every string and binary value in the runtime.
//
// A Series holds elements that are either one byte (Latin-1 content, binary
// data) or two bytes (UCS-2 wide characters) each. The width is a property of
// the storage, not of any particular value: many views may alias one series at
// different offsets. Writing a codepoint above 0xFF into a byte-wide series
// promotes ("widens") the storage to wide mode in place. Widening is one-way;
// a series never narrows back.
//
// The series package is deliberately low-level. It does not know about
// datatypes, cursors, or write protection policy beyond carrying the
// protected flag; those concerns belong to the value and mutation layers.
//
// A series is not safe for concurrent use. The runtime core is
// single-threaded by contract: callers hand fully-formed series across
// goroutine boundaries only with external synchronization. Raw storage
// returned by Bytes or WideElems is invalidated by any mutating call and must be
// re-derived afterward.
package series
