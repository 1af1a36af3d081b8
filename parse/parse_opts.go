package parse

type parseOpts struct {
	explicitArray bool
	keepSpace     bool
}

type ParseOption func(*parseOpts)

// ParseExplicitArray makes every child element value an ir.Many, even
// when the tag occurs once.  The root element stays a single record.
func ParseExplicitArray(v bool) ParseOption {
	return func(o *parseOpts) { o.explicitArray = v }
}

// ParseKeepSpace keeps leading and trailing white space of character data.
func ParseKeepSpace(v bool) ParseOption {
	return func(o *parseOpts) { o.keepSpace = v }
}
