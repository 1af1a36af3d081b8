package emit

import (
	"os"
	"path/filepath"

	"github.com/signadot/svgc/format"

	"github.com/spf13/afero"
)

// Writer writes component files.  It never overwrites an existing file.
type Writer struct {
	FS afero.Fs
}

func NewWriter(fsys afero.Fs) *Writer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Writer{FS: fsys}
}

func (w *Writer) MkdirAll(dir string) error {
	return w.FS.MkdirAll(dir, 0o755)
}

// Path returns the path of the component file for name in dir.
func (w *Writer) Path(dir, name string, f format.Format) string {
	return filepath.Join(dir, name+f.Ext())
}

// Create writes content to a new file at path.  If path exists, the
// returned error wraps fs.ErrExist and the file is left untouched.
func (w *Writer) Create(path, content string) error {
	f, err := w.FS.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *Writer) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(w.FS, path)
}
