package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/svgc/encode"
	"github.com/signadot/svgc/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr.  *ir.Node and *ir.Record arguments
// are rendered as markup.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = markup(x)
		case *ir.Record:
			args[i] = markup(ir.NodeOf("_", x))
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func markup(x *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}
