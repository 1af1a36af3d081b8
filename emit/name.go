package emit

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ComponentName derives a component name from a file name: the base name
// with a case-insensitive ".svg" suffix removed and its first character
// upper-cased.  The rest is kept as is.
func ComponentName(fileName string) string {
	base := filepath.Base(fileName)
	if n := len(base) - len(".svg"); n >= 0 && strings.EqualFold(base[n:], ".svg") {
		base = base[:n]
	}
	r, sz := utf8.DecodeRuneInString(base)
	if sz == 0 {
		return base
	}
	return string(unicode.ToUpper(r)) + base[sz:]
}
