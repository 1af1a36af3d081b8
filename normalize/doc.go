// Package normalize turns parsed SVG trees into trees ready to be encoded as
// component markup.
//
// Normalization filters ignored attributes, renames attributes whose names
// are not identifiers in component markup (xlink:href becomes xlinkHref),
// drops ignored wrapper elements while keeping their children, and reshapes
// the tree so that a tag holds an ir.Many exactly when more than one sibling
// carries it.
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	out := normalize.Normalize(doc)
//
// The package level functions use DefaultTables.  Use New with custom Tables
// for other element and attribute lists.
package normalize
