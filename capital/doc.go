// Package capital resolves the capital city of a state.
//
// Two forms are provided:
//   - Capital: a direct one-to-one lookup from state to city
//   - CapitalIn: an ordered table of year-guarded rules, evaluated first-match-wins
//
// Rules are never reordered. A table whose later rule is shadowed by an
// earlier one still answers with the earlier rule; Table.Check reports such
// rules as unreachable.
package capital
