package emit

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/signadot/svgc/format"

	"github.com/Masterminds/sprig/v3"
)

const DefaultTemplateText = `import React from 'react';

export function {{ .Name }}() {
    return ({{ .Markup }});
}
`

var DefaultTemplate = MustTemplate(DefaultTemplateText)

// Data is what a component template is executed with.
type Data struct {
	// Name is the component name, see ComponentName.
	Name string
	// Markup is the encoded, normalized SVG.
	Markup string
	// File is the source file name as given.
	File   string
	Format format.Format
}

// Template renders components.  Templates have the sprig function map
// available, so that for example {{ .Name | kebabcase }} works.
type Template struct {
	tmpl *template.Template
}

func NewTemplate(text string) (*Template, error) {
	tmpl, err := template.New("component").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return &Template{tmpl: tmpl}, nil
}

func MustTemplate(text string) *Template {
	t, err := NewTemplate(text)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) Render(d *Data) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := t.tmpl.Execute(buf, d); err != nil {
		return "", fmt.Errorf("%w: rendering %s: %w", ErrTemplate, d.Name, err)
	}
	return buf.String(), nil
}
