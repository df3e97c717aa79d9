package capital

import (
	"fmt"

	"recordswitch/internal/diagnostic"
)

// Diagnostic codes reported by Table.Check.
const (
	CodeInvalidState   = "E001"
	CodeEmptyCapital   = "E002"
	CodeEmptyGuard     = "E003"
	CodeUnreachable    = "W001"
	CodeUncoveredState = "I001"
)

// Check inspects the table without evaluating it. Evaluation is unaffected
// by the findings: an unreachable rule stays in place and is simply never chosen.
// Errors carry ErrUnrecognizedState or ErrInvalidRule as their cause.
func (t *Table) Check() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	rules := t.list()
	mentioned := make(map[State]bool, StateTotal)

	for i, r := range rules {
		loc := fmt.Sprintf("rules[%d]", i)

		if !r.State.IsValid() {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     CodeInvalidState,
				Message:  "state is not valid",
				Subject:  r.State.String(),
				Location: loc,
				Cause:    ErrUnrecognizedState,
			})

			continue
		}

		mentioned[r.State] = true
		subject := r.State.Name()

		if r.Capital == "" {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     CodeEmptyCapital,
				Message:  "capital is empty",
				Subject:  subject,
				Location: loc,
				Cause:    ErrInvalidRule,
			})
		}

		if r.Guard.IsEmpty() {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     CodeEmptyGuard,
				Message:  fmt.Sprintf("guard admits no year (%d > %d)", r.Guard.Min, r.Guard.Max),
				Subject:  subject,
				Location: loc,
				Cause:    ErrInvalidRule,
			})

			continue
		}

		if j, ok := shadowedBy(rules, i); ok {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     CodeUnreachable,
				Message: fmt.Sprintf("rule %q (%s) is unreachable: rules[%d] (%s) matches first",
					r.Capital, r.Guard, j, rules[j].Guard),
				Subject:  subject,
				Location: loc,
			})
		}
	}

	for st := State(1); int(st) < StateTotal; st++ {
		if !mentioned[st] {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityInfo,
				Code:     CodeUncoveredState,
				Message:  "no rule mentions this state",
				Subject:  st.Name(),
			})
		}
	}

	return diags
}

// shadowedBy returns the index of the first earlier rule that admits every
// year rules[i] admits.
func shadowedBy(rules []Rule, i int) (int, bool) {
	r := rules[i]
	for j := range i {
		prev := rules[j]
		if prev.State == r.State && !prev.Guard.IsEmpty() && prev.Guard.Covers(r.Guard) {
			return j, true
		}
	}

	return 0, false
}
