package capital

import (
	"fmt"
	"slices"
)

// Rule maps a state, within the years its guard admits, to a capital.
type Rule struct {
	State   State
	Guard   Guard
	Capital string
}

// Table is an ordered list of rules. It is immutable once built.
// A nil or zero Table has no rules.
type Table struct {
	rules []Rule
}

// NewTable builds a table from rules, keeping their declaration order.
func NewTable(rules ...Rule) *Table {
	return &Table{rules: slices.Clone(rules)}
}

// Rules returns a copy of the table rules in declaration order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.list())
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.list())
}

func (t *Table) list() []Rule {
	if t == nil {
		return nil
	}

	return t.rules
}

// Lookup returns the capital of the first rule whose state matches and whose
// guard admits year.
func (t *Table) Lookup(state State, year int) (string, error) {
	if !state.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnrecognizedState, state)
	}

	for _, r := range t.list() {
		if r.State == state && r.Guard.Admits(year) {
			return r.Capital, nil
		}
	}

	return "", fmt.Errorf("%w: %s in %d", ErrNoMatchingRule, state.Name(), year)
}
