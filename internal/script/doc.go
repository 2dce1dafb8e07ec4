// Package script adapts user-supplied Lua functions into runtime hooks. The
// only hook currently exposed is the sort comparator: a Lua function taking
// two single-character strings and returning a number, substituted for the
// mutation engine's built-in comparison.
package script
