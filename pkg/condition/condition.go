// Package condition evaluates the declarative disable rules controls carry.
// A rule names an attribute and a value; while the attribute holds that
// value the control renders dimmed and ignores input.
package condition

import "reflect"

// Lookup resolves attribute values for rule evaluation.
type Lookup interface {
	Get(key string) any
}

// Rule disables a control while the named attribute equals the given value.
// A nil rule never disables anything.
type Rule struct {
	Attribute string
	Equals    any
}

// Disabled reports whether the rule currently applies.
func (r *Rule) Disabled(attrs Lookup) bool {
	if r == nil || r.Attribute == "" {
		return false
	}
	return reflect.DeepEqual(attrs.Get(r.Attribute), r.Equals)
}
