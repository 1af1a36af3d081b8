// Package emit turns encoded markup into component source and writes it to
// files.
//
//	name := emit.ComponentName("icons/arrow-left.svg") // "Arrow-left"
//	src, err := emit.DefaultTemplate.Render(&emit.Data{Name: name, Markup: markup})
//
//	w := emit.NewWriter(afero.NewOsFs())
//	err := w.Create(w.Path("out", name, format.TSXFormat), src)
//	if errors.Is(err, fs.ErrExist) {
//	    // the existing file was left alone
//	}
package emit
