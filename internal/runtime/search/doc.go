// Package search implements generalized find over series storage: substring,
// single-codepoint, and bitset-membership targets, with configurable case
// sensitivity, direction, anchoring, and skip stride.
//
// Positions returned are absolute series positions, not relative to any
// view's index. A byte-for-byte fast path is taken when both sides are
// byte-wide and no flags beyond Case and Match are in play; the general path
// handles mixed widths, stride, and non-string targets.
package search
