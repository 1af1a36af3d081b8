package normalize

import (
	"github.com/signadot/svgc/debug"
	"github.com/signadot/svgc/ir"
)

// Normalizer reshapes parsed trees into normalized trees.  It holds only
// immutable tables and may be shared between goroutines; each call works on
// its own accumulator.
type Normalizer struct {
	tables       Tables
	ignoredElems map[string]struct{}
	ignoredAttrs map[string]struct{}
}

var defaultNormalizer = New(DefaultTables())

func New(t Tables) *Normalizer {
	t = t.Clone()
	n := &Normalizer{
		tables:       t,
		ignoredElems: make(map[string]struct{}, len(t.IgnoredElements)),
		ignoredAttrs: make(map[string]struct{}, len(t.IgnoredAttributes)),
	}
	for _, e := range t.IgnoredElements {
		n.ignoredElems[e] = struct{}{}
	}
	for _, a := range t.IgnoredAttributes {
		n.ignoredAttrs[a] = struct{}{}
	}
	return n
}

func (n *Normalizer) Tables() Tables {
	return n.tables.Clone()
}

// Normalize returns the normalized form of doc in a fresh tree.  doc is not
// modified.
func (n *Normalizer) Normalize(doc *ir.Node) *ir.Node {
	acc := ir.NewNode()
	n.Walk(doc, acc)
	return acc
}

func Normalize(doc *ir.Node) *ir.Node {
	return defaultNormalizer.Normalize(doc)
}

// Walk merges the normalized form of node into acc.
//
// Every occurrence of a tag, whether given as a single record or as an
// element of a Many, is merged on its own: the first occurrence under acc is
// stored as a record, the second promotes it to a Many.  Ignored elements
// get no entry and their children are merged into acc itself.  A nil acc
// makes Walk a no-op.
func (n *Normalizer) Walk(node *ir.Node, acc *ir.Node) {
	if node == nil || acc == nil {
		return
	}
	for _, e := range node.Entries {
		for _, rec := range ir.Records(e.Value) {
			n.walkOne(e.Tag, rec, acc)
		}
	}
}

func (n *Normalizer) walkOne(tag string, child *ir.Record, acc *ir.Node) {
	if _, ignored := n.ignoredElems[tag]; ignored {
		if debug.Walk() {
			debug.Logf("walk: flattening <%s>\n", tag)
		}
		n.Walk(child.Children, acc)
		return
	}
	rec := &ir.Record{Text: child.Text}
	if child.Attrs != nil {
		rec.Attrs = n.RenameAttributes(n.FilterAttributes(child.Attrs))
	}
	acc.Append(tag, rec)
	if debug.Walk() {
		debug.Logf("walk: <%s> now %s under %v\n", tag, acc.Get(tag).Type(), acc.Tags())
	}
	if child.Children.Len() == 0 {
		return
	}
	rec.Children = ir.NewNode()
	n.Walk(child.Children, rec.Children)
	if rec.Children.Len() == 0 {
		rec.Children = nil
	}
}
