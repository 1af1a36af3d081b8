package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TSXFormat Format = iota
	JSXFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":   TSXFormat,
		"tsx": TSXFormat,
		"j":   JSXFormat,
		"jsx": JSXFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TSXFormat:
		return []byte("tsx"), nil
	case JSXFormat:
		return []byte("jsx"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	ff, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = ff
	return nil
}

// Ext returns the file extension, with the leading dot, of components
// written in f.
func (f Format) Ext() string {
	return "." + f.String()
}
