package encode

import "github.com/signadot/bodydump/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the string written once per nesting level.  Yaml
// output ignores indents containing tabs.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
