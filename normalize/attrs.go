package normalize

import (
	"slices"

	"github.com/signadot/svgc/ir"
)

// FilterAttributes returns the attributes of as whose names are not in the
// ignored attribute table.  as is not modified.
func (n *Normalizer) FilterAttributes(as ir.Attrs) ir.Attrs {
	res := make(ir.Attrs, 0, len(as))
	for _, a := range as {
		if _, ignored := n.ignoredAttrs[a.Name]; ignored {
			continue
		}
		res = append(res, ir.Attr{Name: a.Name, Values: slices.Clone(a.Values)})
	}
	return res
}

// RenameAttributes returns as with each name replaced by its entry in the
// rename table, if any.  Values and order are kept.  If two names map to the
// same name, the later value replaces the earlier one at the earlier
// position.
func (n *Normalizer) RenameAttributes(as ir.Attrs) ir.Attrs {
	res := make(ir.Attrs, 0, len(as))
	for _, a := range as {
		name := a.Name
		if to, ok := n.tables.Renames[name]; ok {
			name = to
		}
		res = res.Set(name, slices.Clone(a.Values)...)
	}
	return res
}

func FilterAttributes(as ir.Attrs) ir.Attrs {
	return defaultNormalizer.FilterAttributes(as)
}

func RenameAttributes(as ir.Attrs) ir.Attrs {
	return defaultNormalizer.RenameAttributes(as)
}
