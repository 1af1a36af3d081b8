// Package encode encodes ir nodes as markup.
//
// # Usage
//
//	var buf bytes.Buffer
//	if err := encode.Encode(node, &buf); err != nil {
//	    return err
//	}
//
//	// colored, 4 space indent
//	err := encode.Encode(node, w, encode.EncodeColors(encode.NewColors()), encode.Indent(4))
//
// Output has no XML declaration unless EncodeDecl is given.  Elements
// without children or text are self-closing, text is written inline and
// multi-valued attributes are joined with a space.
//
// # Related Packages
//
//   - github.com/signadot/svgc/ir - tree representation
//   - github.com/signadot/svgc/parse - Parse XML text to ir nodes
package encode
