package ir

import "strings"

// Attr is a named attribute.  More than one value means the attribute was
// repeated on the element.
type Attr struct {
	Name   string
	Values []string
}

func (a Attr) Value() string {
	return strings.Join(a.Values, " ")
}

// Attrs is an ordered attribute map with unique names.
type Attrs []Attr

func (as Attrs) Get(name string) ([]string, bool) {
	for i := range as {
		if as[i].Name == name {
			return as[i].Values, true
		}
	}
	return nil, false
}

func (as Attrs) Names() []string {
	res := make([]string, len(as))
	for i := range as {
		res[i] = as[i].Name
	}
	return res
}

// Set stores values under name, replacing the values of an existing
// attribute in place.
func (as Attrs) Set(name string, values ...string) Attrs {
	for i := range as {
		if as[i].Name == name {
			as[i].Values = values
			return as
		}
	}
	return append(as, Attr{Name: name, Values: values})
}

// Add appends value to the values of name, creating it if needed.
func (as Attrs) Add(name, value string) Attrs {
	for i := range as {
		if as[i].Name == name {
			as[i].Values = append(as[i].Values, value)
			return as
		}
	}
	return append(as, Attr{Name: name, Values: []string{value}})
}

func (as Attrs) Clone() Attrs {
	if as == nil {
		return nil
	}
	res := make(Attrs, len(as))
	for i, a := range as {
		res[i] = Attr{Name: a.Name, Values: append([]string(nil), a.Values...)}
	}
	return res
}
