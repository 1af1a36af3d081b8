package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeDecl prefixes the output with an XML declaration.
func EncodeDecl(v bool) EncodeOption {
	return func(es *EncState) { es.decl = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
