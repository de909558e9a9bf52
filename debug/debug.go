package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Export bool
	Write  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Export = boolEnv("BODYDUMP_DEBUG_EXPORT")
	d.Write = boolEnv("BODYDUMP_DEBUG_WRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Export reports whether each exported record is traced.
func Export() bool {
	return d.Export
}

// Write reports whether dump file writes are traced.
func Write() bool {
	return d.Write
}
