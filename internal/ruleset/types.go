package ruleset

// File is the YAML representation of a rule table.
type File struct {
	Version string      `yaml:"version"`
	Rules   []RuleEntry `yaml:"rules"`
}

// RuleEntry is one rule. A nil bound is open.
type RuleEntry struct {
	State   string `yaml:"state"`
	Since   *int   `yaml:"since,omitempty"`
	Until   *int   `yaml:"until,omitempty"`
	Capital string `yaml:"capital"`
}
