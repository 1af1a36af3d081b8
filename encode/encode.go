package encode

import (
	"io"
	"strings"

	"github.com/signadot/svgc/ir"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

var (
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")
)

type EncState struct {
	depth, indent int
	decl          bool

	Color func(ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.decl {
		if err := writeString(w, xmlDecl+"\n"); err != nil {
			return err
		}
	}
	return encodeNode(node, w, es)
}

func encodeNode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return nil
	}
	for _, e := range node.Entries {
		for _, rec := range ir.Records(e.Value) {
			if err := encodeElement(e.Tag, rec, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeElement(tag string, rec *ir.Record, w io.Writer, es *EncState) error {
	if err := writeIndent(w, es); err != nil {
		return err
	}
	if err := writeString(w, es.color(PunctColor, "<")+es.color(TagColor, tag)); err != nil {
		return err
	}
	for _, a := range rec.Attrs {
		s := " " + es.color(AttrNameColor, a.Name) + es.color(PunctColor, "=") +
			es.color(AttrValueColor, `"`+attrEscaper.Replace(a.Value())+`"`)
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	hasKids := rec.Children.Len() != 0
	if !hasKids && rec.Text == "" {
		return writeString(w, es.color(PunctColor, "/>")+"\n")
	}
	if err := writeString(w, es.color(PunctColor, ">")); err != nil {
		return err
	}
	if !hasKids {
		if err := writeString(w, es.color(TextColor, textEscaper.Replace(rec.Text))); err != nil {
			return err
		}
		return writeClose(tag, w, es)
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	es.depth++
	if rec.Text != "" {
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(TextColor, textEscaper.Replace(rec.Text))+"\n"); err != nil {
			return err
		}
	}
	if err := encodeNode(rec.Children, w, es); err != nil {
		return err
	}
	es.depth--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeClose(tag, w, es)
}

func writeClose(tag string, w io.Writer, es *EncState) error {
	return writeString(w, es.color(PunctColor, "</")+es.color(TagColor, tag)+es.color(PunctColor, ">")+"\n")
}

func writeIndent(w io.Writer, es *EncState) error {
	return writeString(w, strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}
