// Package ir provides the tree representation of SVG documents used by svgc.
//
// # Overview
//
// A document is a Node: an ordered map from tag names to values.  A value is
// either a single *Record or a Many, the ordered records of sibling elements
// sharing a tag.  A Record carries the attributes, child elements and
// character data of one element.
//
// The same structure represents the tree straight out of the parser and the
// normalized tree handed to the encoder.  Once normalized, a tag holds a Many
// exactly when more than one sibling carries it; Node.Append maintains this
// by promoting a single record to a one element Many when the second sibling
// arrives.
//
// # Ordering
//
// Order among different tags at one level carries no meaning for svgc, but
// Entries keep first insertion order so that output is deterministic.  Order
// within a Many is the document order of the siblings.
//
// # Related Packages
//
//   - github.com/signadot/svgc/parse - Parse XML text to a Node
//   - github.com/signadot/svgc/normalize - Filter, rename and reshape a Node
//   - github.com/signadot/svgc/encode - Encode a Node to markup
package ir
