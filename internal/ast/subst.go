package ast

import "fmt"

// Substitution maps one generic parameter to the concrete type chosen for
// it during specialization.
type Substitution struct {
	Param       *GenericParam
	Replacement Type
}

// Substitutions returns the substitution list recorded for a canonical
// bound generic type. Absence is an ordinary outcome, not an error: a bound
// generic type simply has nothing recorded yet. Passing a non-canonical
// type is a caller bug.
func (c *Context) Substitutions(bound *BoundGenericType) ([]Substitution, bool) {
	if !bound.IsCanonical() {
		panic(fmt.Sprintf("ast: substitutions of non-canonical %s", bound.Kind()))
	}
	subs, ok := c.substitutions[bound]
	return subs, ok
}

// SetSubstitutions records the substitution list for a canonical bound
// generic type. Substitutions are derived once, at first specialization;
// recording a second list for the same type is a caller bug.
func (c *Context) SetSubstitutions(bound *BoundGenericType, subs []Substitution) {
	if !bound.IsCanonical() {
		panic(fmt.Sprintf("ast: substitutions of non-canonical %s", bound.Kind()))
	}
	if _, dup := c.substitutions[bound]; dup {
		panic(fmt.Sprintf("ast: substitutions already recorded for %s", bound.Kind()))
	}
	c.substitutions[bound] = subs
}
