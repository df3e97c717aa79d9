package capital

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=State -output=state_string.go

// State is a closed set of US states known to the evaluator.
type State int

const (
	_ State = iota // skip zero value, use it as a default (invalid) value for State

	StateVirginia
	StateCalifornia

	// StateTotal is a constant that represents the total number of states defined
	StateTotal = int(iota)
)

const statePrefix = "State"

// IsValid reports whether s is one of the declared states.
func (s State) IsValid() bool {
	return s > 0 && int(s) < StateTotal
}

// Name returns the state name without the type prefix, e.g. "Virginia".
func (s State) Name() string {
	return strings.TrimPrefix(s.String(), statePrefix)
}

// ParseState accepts either the bare name ("California") or the constant
// name ("StateCalifornia"), case-insensitively.
func ParseState(s string) (State, error) {
	needle := strings.TrimSpace(s)
	for st := State(1); int(st) < StateTotal; st++ {
		if strings.EqualFold(needle, st.Name()) || strings.EqualFold(needle, st.String()) {
			return st, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedState, s)
}
