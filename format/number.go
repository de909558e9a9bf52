package format

import (
	"math"
	"strconv"
)

// Significant digit counts used for dumped quantities.
const (
	HighPrecision = 16
	LowPrecision  = 7
)

// General formats v with at most digits significant digits, in fixed
// notation when the decimal exponent is in [-4, digits) and in exponent
// notation otherwise.  Trailing zeros are dropped, so 1.5 is "1.5" and
// 1.7565670e28 at 16 digits is "1.756567e+28".
func General(v float64, digits int) string {
	if digits < 1 {
		digits = 1
	}
	if v == 0 {
		// no negative zero in dumps
		return "0"
	}
	return strconv.FormatFloat(v, 'g', digits, 64)
}

// Finite reports whether v can be written as a JSON number.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
