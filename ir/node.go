package ir

// Entry is one tag of a Node together with its value.
type Entry struct {
	Tag   string
	Value Value
}

// Node maps tag names to values.  Entries are kept in first insertion order.
//
// A Node is used both for the tree produced by the parser, where a tag may
// hold a record or a sequence of records depending on how the parser was
// configured, and for the normalized tree, where a tag holds a Many if and
// only if more than one sibling carries it.
type Node struct {
	Entries []*Entry
}

// Record is one element: its attributes, its child elements and its
// character data.
type Record struct {
	// Attrs is nil when the element has no attribute map at all.
	Attrs    Attrs
	Children *Node
	Text     string
}

func (r *Record) Type() Type { return RecordType }

func NewNode() *Node {
	return &Node{}
}

// NodeOf returns a node with a single entry.
func NodeOf(tag string, v Value) *Node {
	return &Node{Entries: []*Entry{{Tag: tag, Value: v}}}
}

func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Entries)
}

func (n *Node) Get(tag string) Value {
	if n == nil {
		return nil
	}
	for _, e := range n.Entries {
		if e.Tag == tag {
			return e.Value
		}
	}
	return nil
}

func (n *Node) Has(tag string) bool {
	return n.Get(tag) != nil
}

// Set stores v under tag.  An existing entry keeps its position.
func (n *Node) Set(tag string, v Value) {
	for _, e := range n.Entries {
		if e.Tag == tag {
			e.Value = v
			return
		}
	}
	n.Entries = append(n.Entries, &Entry{Tag: tag, Value: v})
}

// Append adds rec as the next sibling with the given tag.  The first record
// is stored as is, a second one promotes the existing record to a Many
// before appending.
func (n *Node) Append(tag string, rec *Record) {
	switch cur := n.Get(tag).(type) {
	case nil:
		n.Set(tag, rec)
	case *Record:
		n.Set(tag, Many{cur, rec})
	case Many:
		n.Set(tag, append(cur, rec))
	}
}

func (n *Node) Tags() []string {
	if n == nil {
		return nil
	}
	res := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		res[i] = e.Tag
	}
	return res
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{Entries: make([]*Entry, len(n.Entries))}
	for i, e := range n.Entries {
		var v Value
		switch x := e.Value.(type) {
		case *Record:
			v = x.Clone()
		case Many:
			m := make(Many, len(x))
			for j, r := range x {
				m[j] = r.Clone()
			}
			v = m
		}
		res.Entries[i] = &Entry{Tag: e.Tag, Value: v}
	}
	return res
}

func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	return &Record{
		Attrs:    r.Attrs.Clone(),
		Children: r.Children.Clone(),
		Text:     r.Text,
	}
}
