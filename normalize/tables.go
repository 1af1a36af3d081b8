package normalize

import (
	"maps"
	"slices"
)

// Tables holds the element and attribute lists a Normalizer applies.
type Tables struct {
	// IgnoredElements are wrappers dropped from the output.  Their
	// children are attached to the wrapper's parent.
	IgnoredElements []string
	// IgnoredAttributes are removed from every element.
	IgnoredAttributes []string
	// Renames maps attribute names which are not identifiers in component
	// markup to names which are.
	Renames map[string]string
}

func DefaultTables() Tables {
	return Tables{
		IgnoredElements:   []string{"g"},
		IgnoredAttributes: []string{"id", "path-name", "data-name", "class"},
		Renames: map[string]string{
			"xmlns:link":  "xmlnsLink",
			"xmlns:xlink": "xmlnsXlink",
			"xlink:href":  "xlinkHref",
		},
	}
}

// Clone returns a deep copy of t.
func (t Tables) Clone() Tables {
	return Tables{
		IgnoredElements:   slices.Clone(t.IgnoredElements),
		IgnoredAttributes: slices.Clone(t.IgnoredAttributes),
		Renames:           maps.Clone(t.Renames),
	}
}
