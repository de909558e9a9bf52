package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/bodydump/encode"
	"github.com/signadot/bodydump/format"
	"github.com/signadot/bodydump/ir"
)

// Logf writes a trace line to stderr.  *ir.Node arguments are rendered as
// yaml.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
			args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
