// Package convert drives svg to component conversion over a set of input
// files.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/signadot/svgc/debug"
	"github.com/signadot/svgc/emit"
	"github.com/signadot/svgc/encode"
	"github.com/signadot/svgc/format"
	"github.com/signadot/svgc/ir"
	"github.com/signadot/svgc/libdiff"
	"github.com/signadot/svgc/logger"
	"github.com/signadot/svgc/normalize"
	"github.com/signadot/svgc/parse"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

var ErrSelect = errors.New("select error")

const Separator = "\n\n============================================\n\n"

type Options struct {
	// Create writes components to files in Dir.
	Create bool
	Dir    string
	// Output logs components even when Create is set.
	Output bool
	Format format.Format
	// Diff prints a diff against existing files which Create would not
	// overwrite.
	Diff bool
	// Color colors the markup of logged components.
	Color bool
	// Select is a path, such as $.svg.defs.symbol[0], to the element
	// converted in place of the whole document.
	Select string
}

// Log reports whether components are written to the log stream.
func (o *Options) Log() bool {
	return o.Output || !o.Create
}

type Converter struct {
	Options

	FS       afero.Fs
	Out      io.Writer
	Template *emit.Template

	normalizer *normalize.Normalizer
	writer     *emit.Writer
}

func New(fsys afero.Fs, out io.Writer, tables normalize.Tables, opts Options) *Converter {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if out == nil {
		out = io.Discard
	}
	return &Converter{
		Options:    opts,
		FS:         fsys,
		Out:        out,
		Template:   emit.DefaultTemplate,
		normalizer: normalize.New(tables),
		writer:     emit.NewWriter(fsys),
	}
}

// File is the content of one input file.
type File struct {
	Name string
	Data []byte
}

type Result struct {
	File      string
	Name      string
	Markup    string
	Component string
	// Path is the component file, set when Create is.
	Path string
	// WriteErr is the error creating Path, if any.
	WriteErr error
}

// SVGFiles returns the args ending in ".svg", in order.
func SVGFiles(args []string) []string {
	var res []string
	for _, a := range args {
		if strings.HasSuffix(a, ".svg") {
			res = append(res, a)
		}
	}
	return res
}

// Run converts the svg files among args.  Files are read concurrently and
// converted one after the other in argument order.  Read errors end the
// run.  A file which fails to convert is logged and skipped; the errors are
// joined in the returned error.  Write errors are logged and recorded in the
// results.
func (c *Converter) Run(ctx context.Context, args []string) ([]*Result, error) {
	files := SVGFiles(args)
	if c.Create && c.Dir != "" {
		if err := c.writer.MkdirAll(c.Dir); err != nil {
			return nil, fmt.Errorf("could not create %q: %w", c.Dir, err)
		}
	}
	inputs, err := c.ReadFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	res := make([]*Result, 0, len(inputs))
	var errs []error
	for _, in := range inputs {
		r, err := c.Convert(ctx, in)
		if err != nil {
			logger.FromContext(ctx).Error("could not convert", "file", in.Name, "err", err)
			errs = append(errs, err)
			continue
		}
		res = append(res, r)
	}
	return res, errors.Join(errs...)
}

func (c *Converter) ReadFiles(ctx context.Context, files []string) ([]*File, error) {
	res := make([]*File, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := afero.ReadFile(c.FS, name)
			if err != nil {
				return fmt.Errorf("could not read %q: %w", name, err)
			}
			res[i] = &File{Name: name, Data: d}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Convert turns one svg file into a component, logging and writing it
// according to the options.
func (c *Converter) Convert(ctx context.Context, in *File) (*Result, error) {
	doc, err := parse.Parse(in.Data)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", in.Name, err)
	}
	if debug.Parse() {
		debug.Logf("parsed %s:\n%v", in.Name, doc)
	}
	if c.Select != "" {
		doc, err = selectNode(doc, c.Select)
		if err != nil {
			return nil, fmt.Errorf("error processing %s: %w", in.Name, err)
		}
	}
	norm := c.normalizer.Normalize(doc)
	if debug.Convert() {
		debug.Logf("normalized %s:\n%v", in.Name, norm)
	}
	if c.Select != "" && !singleElement(norm) {
		return nil, fmt.Errorf("error processing %s: %w: %s does not normalize to one element", in.Name, ErrSelect, c.Select)
	}
	r := &Result{
		File:   in.Name,
		Name:   emit.ComponentName(in.Name),
		Markup: encode.MustString(norm),
	}
	r.Component, err = c.render(r, r.Markup)
	if err != nil {
		return nil, err
	}
	if c.Log() {
		if err := c.log(r, norm); err != nil {
			return nil, err
		}
	}
	if c.Create {
		c.create(ctx, r)
	}
	return r, nil
}

// selectNode returns the element of doc at path as a document of its own.
func selectNode(doc *ir.Node, path string) (*ir.Node, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelect, err)
	}
	v, err := doc.GetPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelect, err)
	}
	rec, ok := v.(*ir.Record)
	if !ok || rec == nil {
		if n := len(ir.Records(v)); n > 1 {
			return nil, fmt.Errorf("%w: %s selects %d elements", ErrSelect, path, n)
		}
		return nil, fmt.Errorf("%w: nothing at %s", ErrSelect, path)
	}
	return ir.NodeOf(p.Tag(), rec), nil
}

func singleElement(n *ir.Node) bool {
	return n.Len() == 1 && len(ir.Records(n.Entries[0].Value)) == 1
}

func (c *Converter) render(r *Result, markup string) (string, error) {
	return c.Template.Render(&emit.Data{
		Name:   r.Name,
		Markup: markup,
		File:   r.File,
		Format: c.Format,
	})
}

func (c *Converter) log(r *Result, norm *ir.Node) error {
	comp := r.Component
	if c.Color {
		var err error
		comp, err = c.render(r, encode.MustString(norm, encode.EncodeColors(encode.NewColors())))
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(c.Out, Separator+comp)
	return err
}

func (c *Converter) create(ctx context.Context, r *Result) {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	r.Path = c.writer.Path(dir, r.Name, c.Format)
	if debug.Emit() {
		debug.Logf("creating %s for %s\n", r.Path, r.File)
	}
	r.WriteErr = c.writer.Create(r.Path, r.Component)
	if r.WriteErr == nil {
		return
	}
	log := logger.FromContext(ctx)
	log.Error("could not create component", "file", r.Path, "code", emit.ErrorCode(r.WriteErr), "err", r.WriteErr)
	if c.Diff && errors.Is(r.WriteErr, fs.ErrExist) {
		c.diff(ctx, r)
	}
}

func (c *Converter) diff(ctx context.Context, r *Result) {
	old, err := c.writer.ReadFile(r.Path)
	if err != nil {
		logger.FromContext(ctx).Warn("could not read existing component", "file", r.Path, "err", err)
		return
	}
	d := libdiff.Text(string(old), r.Component)
	if d == "" {
		logger.FromContext(ctx).Info("existing component is up to date", "file", r.Path)
		return
	}
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "--- %s\n+++ %s (from %s)\n", r.Path, r.Path, r.File)
	buf.WriteString(d)
	if _, err := c.Out.Write(buf.Bytes()); err != nil {
		logger.FromContext(ctx).Warn("could not write diff", "file", r.Path, "err", err)
	}
}
