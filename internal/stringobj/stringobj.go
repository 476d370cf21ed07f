// Package stringobj aids in writing String methods for objects
// with a JSON-like output.
package stringobj

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Builder helps build String functions for objects that skip zero-value
// attributes. Attributes are rendered in alphabetical order.
//
//	{alphabet: 10, bits: 59}
type Builder struct {
	attrs []attr
}

type attr struct {
	name  string
	value any
}

// Put adds the given attribute-value pair to the builder, skipping it if the
// value is a zero value.
func (b *Builder) Put(name string, value any) {
	if value == nil || reflect.ValueOf(value).IsZero() {
		return
	}
	b.attrs = append(b.attrs, attr{name: name, value: value})
}

// String returns the final string representation.
func (b *Builder) String() string {
	attrs := slices.Clone(b.attrs)
	slices.SortStableFunc(attrs, func(a, b attr) int {
		return strings.Compare(a.name, b.name)
	})

	var out strings.Builder
	out.WriteByte('{')
	for i, a := range attrs {
		if i > 0 {
			out.WriteString(", ")
		}
		fmt.Fprintf(&out, "%s: %v", a.name, a.value)
	}
	out.WriteByte('}')
	return out.String()
}
