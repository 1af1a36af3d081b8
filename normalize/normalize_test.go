package normalize

import (
	"strings"
	"testing"

	"github.com/signadot/svgc/encode"
	"github.com/signadot/svgc/ir"
	"github.com/signadot/svgc/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func attrs(kv ...string) ir.Attrs {
	var res ir.Attrs
	for i := 0; i+1 < len(kv); i += 2 {
		res = res.Add(kv[i], kv[i+1])
	}
	return res
}

func mustParse(t *testing.T, in string, opts ...parse.ParseOption) *ir.Node {
	t.Helper()
	doc, err := parse.Parse([]byte(in), opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return doc
}

func TestFilterAttributes(t *testing.T) {
	tests := []struct {
		name string
		in   ir.Attrs
		want ir.Attrs
	}{
		{"nil", nil, ir.Attrs{}},
		{"nothing ignored", attrs("d", "M0", "fill", "red"), attrs("d", "M0", "fill", "red")},
		{
			"all ignored kinds",
			attrs("id", "a", "d", "M0", "path-name", "p", "data-name", "Layer 1", "class", "c", "fill", "none"),
			attrs("d", "M0", "fill", "none"),
		},
		{"only ignored", attrs("id", "x"), ir.Attrs{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAttributes(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			again := FilterAttributes(got)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	in := attrs("id", "a", "d", "M0")
	FilterAttributes(in)
	if diff := cmp.Diff(attrs("id", "a", "d", "M0"), in); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestRenameAttributes(t *testing.T) {
	tests := []struct {
		name string
		in   ir.Attrs
		want ir.Attrs
	}{
		{"xmlns:link", attrs("xmlns:link", "test"), attrs("xmlnsLink", "test")},
		{
			"table and pass through keep order",
			attrs("xmlns", "ns", "xmlns:xlink", "xl", "viewBox", "0 0 1 1", "xlink:href", "#a"),
			attrs("xmlns", "ns", "xmlnsXlink", "xl", "viewBox", "0 0 1 1", "xlinkHref", "#a"),
		},
		{"unmapped colon name", attrs("sketch:type", "MSPage"), attrs("sketch:type", "MSPage")},
		{
			"collision later wins at earlier position",
			attrs("xlinkHref", "first", "fill", "red", "xlink:href", "second"),
			attrs("xlinkHref", "second", "fill", "red"),
		},
		{
			"repeated values kept",
			ir.Attrs{{Name: "xlink:href", Values: []string{"#a", "#b"}}},
			ir.Attrs{{Name: "xlinkHref", Values: []string{"#a", "#b"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenameAttributes(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenameTotality(t *testing.T) {
	renames := DefaultTables().Renames
	in := attrs("xmlns:link", "1", "a", "2", "xlink:href", "3", "b:c", "4")
	got := RenameAttributes(in)
	if len(got) != len(in) {
		t.Fatalf("got %d attributes, want %d", len(got), len(in))
	}
	for i, a := range in {
		want := a.Name
		if to, ok := renames[a.Name]; ok {
			want = to
		}
		if got[i].Name != want {
			t.Errorf("attribute %d: got %q want %q", i, got[i].Name, want)
		}
		if diff := cmp.Diff(a.Values, got[i].Values); diff != "" {
			t.Errorf("attribute %d value changed:\n%s", i, diff)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{
			name: "attributes filtered then renamed",
			in:   `<svg id="root" xmlns:xlink="x" viewBox="0 0 1 1"><use id="u" xlink:href="#p"/></svg>`,
			want: ir.NodeOf("svg", &ir.Record{
				Attrs:    attrs("xmlnsXlink", "x", "viewBox", "0 0 1 1"),
				Children: ir.NodeOf("use", &ir.Record{Attrs: attrs("xlinkHref", "#p")}),
			}),
		},
		{
			name: "order preserved within tag",
			in:   `<svg><path d="A"/><path d="B" id="x"/><path d="C"/></svg>`,
			want: ir.NodeOf("svg", &ir.Record{
				Children: ir.NodeOf("path", ir.Many{
					{Attrs: attrs("d", "A")},
					{Attrs: attrs("d", "B")},
					{Attrs: attrs("d", "C")},
				}),
			}),
		},
		{
			name: "single occurrence is a record",
			in:   `<svg><path d="A"/><rect/><rect/></svg>`,
			want: ir.NodeOf("svg", &ir.Record{
				Children: &ir.Node{Entries: []*ir.Entry{
					{Tag: "path", Value: &ir.Record{Attrs: attrs("d", "A")}},
					{Tag: "rect", Value: ir.Many{{}, {}}},
				}},
			}),
		},
		{
			name: "ignored wrappers flattened and merged with siblings",
			in: `<svg>
  <path d="A"/>
  <g id="layer" fill="red">
    <path d="B"/>
    <g><path d="C"/><circle r="1"/></g>
  </g>
  <path d="D"/>
</svg>`,
			want: ir.NodeOf("svg", &ir.Record{
				Children: &ir.Node{Entries: []*ir.Entry{
					{Tag: "path", Value: ir.Many{
						{Attrs: attrs("d", "A")},
						{Attrs: attrs("d", "D")},
						{Attrs: attrs("d", "B")},
						{Attrs: attrs("d", "C")},
					}},
					{Tag: "circle", Value: &ir.Record{Attrs: attrs("r", "1")}},
				}},
			}),
		},
		{
			name: "children go to their own occurrence",
			in:   `<svg><defs><linearGradient id="a"/></defs><defs><stop offset="0"/><stop offset="1"/></defs></svg>`,
			want: ir.NodeOf("svg", &ir.Record{
				Children: ir.NodeOf("defs", ir.Many{
					{Children: ir.NodeOf("linearGradient", &ir.Record{Attrs: ir.Attrs{}})},
					{Children: ir.NodeOf("stop", ir.Many{
						{Attrs: attrs("offset", "0")},
						{Attrs: attrs("offset", "1")},
					})},
				}),
			}),
		},
		{
			name: "text kept",
			in:   `<svg><title>Logo</title><text x="1">Hi</text></svg>`,
			want: ir.NodeOf("svg", &ir.Record{
				Children: &ir.Node{Entries: []*ir.Entry{
					{Tag: "title", Value: &ir.Record{Text: "Logo"}},
					{Tag: "text", Value: &ir.Record{Attrs: attrs("x", "1"), Text: "Hi"}},
				}},
			}),
		},
		{
			name: "ignored wrapper with only ignored content",
			in:   `<svg><g/></svg>`,
			want: ir.NodeOf("svg", &ir.Record{}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, explicit := range []bool{false, true} {
				doc := mustParse(t, tt.in, parse.ParseExplicitArray(explicit))
				got := Normalize(doc)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("explicit=%t (-want +got):\n%s", explicit, diff)
				}
			}
		})
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	doc := mustParse(t, `<svg id="a"><g><path id="p" d="M0"/></g></svg>`)
	orig := doc.Clone()
	Normalize(doc)
	if diff := cmp.Diff(orig, doc); diff != "" {
		t.Errorf("input modified (-orig +after):\n%s", diff)
	}
}

func TestIgnoredFlattening(t *testing.T) {
	wrapped := Normalize(mustParse(t, `<g><rect width="1"/></g>`))
	bare := Normalize(mustParse(t, `<rect width="1"/>`))
	if diff := cmp.Diff(bare, wrapped); diff != "" {
		t.Errorf("(-bare +wrapped):\n%s", diff)
	}
}

func TestWalkMergesIntoAccumulator(t *testing.T) {
	n := New(DefaultTables())
	acc := ir.NewNode()
	n.Walk(mustParse(t, `<path d="A"/>`), acc)
	if _, ok := acc.Get("path").(*ir.Record); !ok {
		t.Fatalf("expected a record after one walk, got %T", acc.Get("path"))
	}
	n.Walk(mustParse(t, `<path d="B"/>`), acc)
	n.Walk(mustParse(t, `<g><path d="C"/></g>`), acc)
	want := ir.NodeOf("path", ir.Many{
		{Attrs: attrs("d", "A")},
		{Attrs: attrs("d", "B")},
		{Attrs: attrs("d", "C")},
	})
	if diff := cmp.Diff(want, acc); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWalkNil(t *testing.T) {
	n := New(DefaultTables())
	n.Walk(mustParse(t, `<svg/>`), nil)
	acc := ir.NewNode()
	n.Walk(nil, acc)
	if acc.Len() != 0 {
		t.Errorf("expected empty accumulator, got %v", acc.Tags())
	}
	if got := n.Normalize(nil); got.Len() != 0 {
		t.Errorf("expected empty result, got %v", got.Tags())
	}
}

func TestRootMany(t *testing.T) {
	doc := ir.NodeOf("path", ir.Many{
		{Attrs: attrs("d", "A", "id", "1")},
		{Attrs: attrs("d", "B")},
	})
	want := ir.NodeOf("path", ir.Many{
		{Attrs: attrs("d", "A")},
		{Attrs: attrs("d", "B")},
	})
	if diff := cmp.Diff(want, Normalize(doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNilRecordsSkipped(t *testing.T) {
	doc := ir.NodeOf("svg", &ir.Record{
		Children: ir.NodeOf("path", ir.Many{nil, {Attrs: attrs("d", "A")}, nil}),
	})
	want := ir.NodeOf("svg", &ir.Record{
		Children: ir.NodeOf("path", &ir.Record{Attrs: attrs("d", "A")}),
	})
	if diff := cmp.Diff(want, Normalize(doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCustomTables(t *testing.T) {
	n := New(Tables{
		IgnoredElements:   []string{"metadata", "sodipodi:namedview"},
		IgnoredAttributes: []string{"style"},
		Renames:           map[string]string{"fill-rule": "fillRule"},
	})
	doc := mustParse(t, `<svg><metadata><title>t</title></metadata><sodipodi:namedview/><g id="x"><path fill-rule="evenodd" style="s"/></g></svg>`)
	want := ir.NodeOf("svg", &ir.Record{
		Children: &ir.Node{Entries: []*ir.Entry{
			{Tag: "title", Value: &ir.Record{Text: "t"}},
			{Tag: "g", Value: &ir.Record{
				Attrs:    attrs("id", "x"),
				Children: ir.NodeOf("path", &ir.Record{Attrs: attrs("fillRule", "evenodd")}),
			}},
		}},
	})
	if diff := cmp.Diff(want, n.Normalize(doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	tables := n.Tables()
	tables.Renames["x"] = "y"
	if _, ok := n.Tables().Renames["x"]; ok {
		t.Error("Tables leaks internal state")
	}
}

func TestNoXlinkInMarkup(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 76.08 76.08"></svg>`)
	out := encode.MustString(Normalize(doc))
	if strings.Contains(out, "xmlns:xlink") {
		t.Errorf("markup contains xmlns:xlink: %s", out)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" xmlnsXlink="http://www.w3.org/1999/xlink" viewBox="0 0 76.08 76.08"/>`
	if out != want {
		t.Errorf("got %s\nwant %s", out, want)
	}
}

func TestIgnoredWrapperAttributesDropped(t *testing.T) {
	got := Normalize(mustParse(t, `<svg><g transform="translate(1 1)" fill="red"><path d="A"/></g></svg>`))
	want := ir.NodeOf("svg", &ir.Record{
		Children: ir.NodeOf("path", &ir.Record{Attrs: attrs("d", "A")}),
	})
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
