// Package ruleset reads and writes capital rule tables as YAML.
//
// A file lists rules in evaluation order:
//
//	version: "1"
//	rules:
//	  - state: Virginia
//	    capital: Richmond
//	  - state: California
//	    since: 1854
//	    capital: Sacramento
//
// since and until are optional inclusive year bounds.
package ruleset
