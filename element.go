package playground

import (
	"fmt"
	"strings"
)

// Element is one item of a grouped document: a standalone [Code] block or a
// [Documentation] group.
//
//sumtype:decl
type Element interface {
	fmt.Stringer

	element()
}

// Elements is an ordered grouped document.
type Elements []Element

// Documentation is a run of consecutive non-code blocks. Groups produced by
// [Group] are never empty.
type Documentation []Prose

func (Code) element()          {}
func (Documentation) element() {}

func (d Documentation) String() string {
	parts := make([]string, len(d))
	for i, p := range d {
		parts[i] = p.String()
	}

	return "documentation([" + strings.Join(parts, " ") + "])"
}

// Equal reports whether d and other hold the same blocks in the same order.
func (d Documentation) Equal(other Documentation) bool {
	if len(d) != len(other) {
		return false
	}

	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}

	return true
}

// Equal reports whether e and other hold equal elements in the same order.
func (e Elements) Equal(other Elements) bool {
	if len(e) != len(other) {
		return false
	}

	for i := range e {
		if !elementEqual(e[i], other[i]) {
			return false
		}
	}

	return true
}

func elementEqual(a, b Element) bool {
	switch a := a.(type) {
	case Code:
		code, ok := b.(Code)

		return ok && a == code
	case Documentation:
		doc, ok := b.(Documentation)

		return ok && a.Equal(doc)
	}

	return a == nil && b == nil
}
