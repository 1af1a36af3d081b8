package ir

import (
	"fmt"
	"slices"
)

type Type int

const (
	RecordType Type = iota
	ManyType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		RecordType: "Record",
		ManyType:   "Many",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Record": RecordType,
		"Many":   ManyType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// Value is the value stored under a tag: either a single *Record or a Many
// holding the records of sibling elements sharing the tag.
type Value interface {
	Type() Type
}

// Many is an ordered sequence of sibling records with the same tag.
type Many []*Record

func (m Many) Type() Type { return ManyType }

// Records returns the records held by v, in order.  A nil v has none and
// nil elements of a Many are skipped.
func Records(v Value) []*Record {
	switch x := v.(type) {
	case *Record:
		if x == nil {
			return nil
		}
		return []*Record{x}
	case Many:
		if !slices.Contains(x, nil) {
			return x
		}
		res := make([]*Record, 0, len(x))
		for _, r := range x {
			if r != nil {
				res = append(res, r)
			}
		}
		return res
	}
	return nil
}
