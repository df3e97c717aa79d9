package diagnostic

import (
	"strings"
)

// Severity ranks a finding about a rule table.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one finding about a rule table.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding, e.g. "W001".
	Code    string
	Message string
	// Subject is the state the finding is about, if any.
	Subject string
	// Location points at the offending rule, e.g. "rules[3]", if any.
	Location string
	// Cause is the sentinel error callers can match with errors.Is, if any.
	Cause error
}

// String renders the finding as "rules[3] [California]: warning W001: message".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Location != "" {
		b.WriteString(d.Location)
	}

	if d.Subject != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString("[" + d.Subject + "]")
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	b.WriteString(d.Severity.String())

	if d.Code != "" {
		b.WriteString(" " + d.Code)
	}

	b.WriteString(": " + d.Message)

	return b.String()
}

// Diagnostics collects findings grouped by severity, in discovery order.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// Merge appends the findings of other after the ones already collected.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error folds the error findings into a single error, or returns nil if
// there are none. The causes of the findings stay reachable via errors.Is.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	return &tableError{findings: d.Errors}
}

type tableError struct {
	findings []Diagnostic
}

func (e *tableError) Error() string {
	parts := make([]string, 0, len(e.findings))
	for _, f := range e.findings {
		parts = append(parts, f.String())
	}

	return strings.Join(parts, "; ")
}

func (e *tableError) Unwrap() []error {
	var causes []error

	for _, f := range e.findings {
		if f.Cause != nil {
			causes = append(causes, f.Cause)
		}
	}

	return causes
}
