// Package mutate implements the in-place modification operations over series
// views: insert/append/change with part and dup, take/remove/clear, reverse,
// swap, sort, shuffle, trim, case changing, and the binary bitwise operations.
//
// Every operation checks the series' protected flag before touching storage
// and fails with ErrProtected leaving no partial effect. Operations that
// accept a part length clamp it to the natural length of the value it applies
// to. Width promotion happens transparently when inserted content needs wide
// storage, except for binary-kinded targets, which never widen.
package mutate
