package capital

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedState is returned for a value outside the declared states.
	ErrUnrecognizedState = errors.New("unrecognized state")
	// ErrNoMatchingRule is returned when no rule answers for a valid state.
	ErrNoMatchingRule = errors.New("no matching rule")
	// ErrInvalidRule is the cause of Table.Check errors about a malformed rule.
	ErrInvalidRule = errors.New("invalid rule")
)

// Capital returns the present-day capital of state.
func Capital(state State) (string, error) {
	switch state {
	case StateVirginia:
		return "Richmond", nil
	case StateCalifornia:
		return "Sacramento", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnrecognizedState, state)
	}
}

// Historical returns the table of capitals by year. California rules are
// ordered from the latest move to the earliest, so the tightest bound wins.
func Historical() *Table {
	return NewTable(
		Rule{State: StateVirginia, Guard: Unguarded(), Capital: "Richmond"},
		Rule{State: StateCalifornia, Guard: Since(1854), Capital: "Sacramento"},
		Rule{State: StateCalifornia, Guard: Since(1853), Capital: "Benicia"},
		Rule{State: StateCalifornia, Guard: Since(1852), Capital: "Vallejo"},
		Rule{State: StateCalifornia, Guard: Since(1850), Capital: "San Jose"},
	)
}

var historical = Historical()

// CapitalIn returns the capital of state in the given year.
// Virginia ignores the year; California before 1850 has no answer.
func CapitalIn(state State, year int) (string, error) {
	return historical.Lookup(state, year)
}
