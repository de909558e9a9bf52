// Package encode encodes IR nodes to JSON or YAML text.
//
// Object fields are written in IR order and numbers with their IR text, so
// the same node always encodes to the same bytes.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("Kerbin")},
//	    {Key: "radius", Val: ir.FromNumber("600000", 600e3)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// yaml, two space indent, terminal colors
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/bodydump/ir - IR representation
//   - github.com/signadot/bodydump/format - formats and number text
package encode
