package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("parse error")
	ErrNoRoot        = fmt.Errorf("%w: no root element", ErrParse)
	ErrMultipleRoots = fmt.Errorf("%w: more than one root element", ErrParse)
	ErrMismatch      = fmt.Errorf("%w: mismatched end tag", ErrParse)
)
