// Package cache controls memoization of derived structures, such as the
// column index of a record store. Policies are explicit values threaded
// through construction or individual calls, rather than hidden global state.
package cache

// Policy decides whether a derived structure may be memoized
type Policy int

const (
	// PolicyDefault defers to the surrounding policy, or PolicyEnabled at the top level
	PolicyDefault Policy = iota
	// PolicyEnabled memoizes derived structures, computing each at most once per instance
	PolicyEnabled
	// PolicyDisabled recomputes derived structures on every access
	PolicyDisabled
)

// String returns a textual representation of this Policy
func (p Policy) String() string {
	switch p {
	case PolicyEnabled:
		return "enabled"
	case PolicyDisabled:
		return "disabled"
	default:
		return "default"
	}
}

// Allows returns true iff memoization is permitted under this Policy
func (p Policy) Allows() bool {
	return p != PolicyDisabled
}

// Resolve returns this Policy unless it is PolicyDefault, in which case the
// fallback is returned
func (p Policy) Resolve(fallback Policy) Policy {
	if p == PolicyDefault {
		return fallback
	}
	return p
}
