package ruleset

import (
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"recordswitch/capital"
	"recordswitch/internal/diagnostic"
)

// LoadFile loads and parses a YAML rule table from the given path.
func LoadFile(path string) (*capital.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a rule table.
func Parse(data []byte) (*capital.Table, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule YAML: %w", err)
	}

	applyDefaults(&f)

	if f.Version != "1" {
		return nil, fmt.Errorf("unsupported rule file version %q", f.Version)
	}

	return f.Table()
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Table converts the file into a rule table, preserving rule order.
// Rules naming an unknown state and rules that Table.Check reports as
// errors make the whole file invalid; all of them are reported at once.
func (f *File) Table() (*capital.Table, error) {
	var diags diagnostic.Diagnostics

	rules := make([]capital.Rule, 0, len(f.Rules))

	for i, e := range f.Rules {
		state, err := capital.ParseState(e.State)
		if err != nil {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     capital.CodeInvalidState,
				Message:  fmt.Sprintf("unknown state %q", e.State),
				Location: fmt.Sprintf("rules[%d]", i),
				Cause:    err,
			})
		}

		guard := capital.Unguarded()
		if e.Since != nil {
			guard.Min = *e.Since
		}

		if e.Until != nil {
			guard.Max = *e.Until
		}

		rules = append(rules, capital.Rule{State: state, Guard: guard, Capital: e.Capital})
	}

	table := capital.NewTable(rules...)

	// Unknown states were already reported above, with their names.
	checked := table.Check()
	checked.Errors = slices.DeleteFunc(checked.Errors, func(d diagnostic.Diagnostic) bool {
		return d.Code == capital.CodeInvalidState
	})

	diags.Merge(checked)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}

	return table, nil
}

// FromTable converts a rule table into its file representation.
// A nil table yields a file without rules.
func FromTable(t *capital.Table) *File {
	f := &File{Version: "1"}

	for _, r := range t.Rules() {
		e := RuleEntry{State: r.State.Name(), Capital: r.Capital}

		if r.Guard.Min != math.MinInt {
			since := r.Guard.Min
			e.Since = &since
		}

		if r.Guard.Max != math.MaxInt {
			until := r.Guard.Max
			e.Until = &until
		}

		f.Rules = append(f.Rules, e)
	}

	return f
}

// Marshal serializes a rule table to YAML.
func Marshal(t *capital.Table) ([]byte, error) {
	return yaml.Marshal(FromTable(t))
}

// WriteFile writes a rule table to the given path.
func WriteFile(t *capital.Table, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write rule file %s: %w", path, err)
	}

	return nil
}
