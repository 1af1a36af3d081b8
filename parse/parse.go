package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/svgc/ir"

	"golang.org/x/net/html/charset"
)

type frame struct {
	tag  string
	rec  *ir.Record
	text strings.Builder
}

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimSpace(d)))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		stack []*frame
		root  *ir.Node
	)
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, fmt.Errorf("%w: <%s> at line %d", ErrMultipleRoots, qname(t.Name), line(dec))
			}
			f := &frame{tag: qname(t.Name), rec: &ir.Record{}}
			for _, a := range t.Attr {
				f.rec.Attrs = f.rec.Attrs.Add(qname(a.Name), a.Value)
			}
			stack = append(stack, f)
		case xml.EndElement:
			tag := qname(t.Name)
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected </%s> at line %d", ErrMismatch, tag, line(dec))
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if tag != top.tag {
				return nil, fmt.Errorf("%w: </%s> closes <%s> at line %d", ErrMismatch, tag, top.tag, line(dec))
			}
			top.rec.Text = top.text.String()
			if !pOpts.keepSpace {
				top.rec.Text = strings.TrimSpace(top.rec.Text)
			}
			if len(stack) == 0 {
				root = ir.NodeOf(top.tag, top.rec)
				continue
			}
			addChild(stack[len(stack)-1].rec, top.tag, top.rec, pOpts)
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) != 0 {
					return nil, fmt.Errorf("%w: text outside of root element at line %d", ErrParse, line(dec))
				}
				continue
			}
			stack[len(stack)-1].text.Write(t)
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unclosed <%s>", ErrParse, stack[len(stack)-1].tag)
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

func addChild(parent *ir.Record, tag string, rec *ir.Record, pOpts *parseOpts) {
	if parent.Children == nil {
		parent.Children = ir.NewNode()
	}
	if !pOpts.explicitArray {
		parent.Children.Append(tag, rec)
		return
	}
	m, _ := parent.Children.Get(tag).(ir.Many)
	parent.Children.Set(tag, append(m, rec))
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func line(dec *xml.Decoder) int {
	ln, _ := dec.InputPos()
	return ln
}
