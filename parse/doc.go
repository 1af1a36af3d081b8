// Package parse parses XML text, typically SVG, into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// every child as an ir.Many
//	node, err := parse.Parse(data, parse.ParseExplicitArray(true))
//
// Names keep the prefix they were written with, so an attribute written
// xlink:href is named "xlink:href" in the result.  Sibling elements sharing a
// tag are grouped under that tag in document order.  Comments, processing
// instructions and directives are dropped.
//
// # Related Packages
//
//   - github.com/signadot/svgc/ir - tree representation
//   - github.com/signadot/svgc/encode - Encode ir nodes to markup
package parse
