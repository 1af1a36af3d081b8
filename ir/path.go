package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path selects elements of a tree.  Paths start with '$' followed by tags
// ('.path', or quoted '.'x.y'') and indices among same-tag siblings
// ('[1]', '[*]').  '..' matches at any depth.
//
//	$.svg.defs.linearGradient[1]
//	$..path[*]
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !bytes.HasSuffix(buf.Bytes(), []byte("..")) {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// Tag returns the last tag named in p, or "" if there is none.
func (p *Path) Tag() string {
	tag := ""
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			tag = *x.Field
		}
	}
	return tag
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if len(rest) == 0 {
				return fmt.Errorf("expected tag after '..'")
			}
			if rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		return parseNext(rest, parent)
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		return parseNext(frag[i+2:], parent)
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseNext(rest string, parent *Path) error {
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected tag at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty tag")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns the value at path, or nil if a tag along the path is
// absent.  A tag with more than one occurrence must be indexed before
// descending further.
func (n *Node) GetPath(path string) (Value, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if yp.Field == nil {
		return nil, fmt.Errorf("%w: %q does not start with a tag", ErrPath, path)
	}
	var cur Value
	node := n
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.Subtree || yp.IndexAll:
			return nil, fmt.Errorf("%w: wildcard in get %q", ErrPath, path)
		case yp.Field != nil:
			if node == nil {
				if _, ok := cur.(Many); ok {
					return nil, fmt.Errorf("%w: %q: expected index before .%s", ErrPath, path, *yp.Field)
				}
				return nil, nil
			}
			cur = node.Get(*yp.Field)
			if cur == nil {
				return nil, nil
			}
		case yp.Index != nil:
			recs := Records(cur)
			if *yp.Index >= len(recs) {
				return nil, fmt.Errorf("%w: %q: index %d out of bounds (len %d)", ErrPath, path, *yp.Index, len(recs))
			}
			cur = recs[*yp.Index]
		}
		node = nil
		if rec, ok := cur.(*Record); ok {
			node = rec.Children
		}
	}
	return cur, nil
}

// ListPath appends the records matching path to dst.  Unlike GetPath, a
// tag selects all its occurrences.
func (n *Node) ListPath(dst []*Record, path string) ([]*Record, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if yp.Field == nil && !yp.Subtree {
		return nil, fmt.Errorf("%w: %q does not start with a tag", ErrPath, path)
	}
	return n.listPath(dst, yp), nil
}

func (n *Node) listPath(dst []*Record, yp *Path) []*Record {
	if n == nil || yp == nil {
		return dst
	}
	if yp.Subtree {
		dst = n.listPath(dst, yp.Next)
		for _, e := range n.Entries {
			for _, r := range Records(e.Value) {
				dst = r.Children.listPath(dst, yp)
			}
		}
		return dst
	}
	if yp.Field == nil {
		return dst
	}
	recs := Records(n.Get(*yp.Field))
	next := yp.Next
	if next != nil && (next.Index != nil || next.IndexAll) {
		if next.Index != nil {
			i := *next.Index
			if i >= len(recs) {
				return dst
			}
			recs = recs[i : i+1]
		}
		next = next.Next
	}
	for _, r := range recs {
		if next == nil {
			dst = append(dst, r)
			continue
		}
		dst = r.Children.listPath(dst, next)
	}
	return dst
}
