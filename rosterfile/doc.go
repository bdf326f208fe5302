// Package rosterfile reads roster documents: the participant names, the
// configured topics and any preferences already collected, in YAML.
//
//	topics: [Math, History]
//	participants:
//	  - name: Ada
//	    partners: [Grace, 3]   # names or 1-based ids, in preference order
//	    primary: Math
//	    secondary: History
//	  - name: Grace
//
// Documents are checked with struct-tag validation on decode. Partner
// references are resolved to ids by Resolve; the roster itself enforces the
// remaining rules (no self-reference, no duplicates, configured topics) when
// the preferences are applied.
package rosterfile
