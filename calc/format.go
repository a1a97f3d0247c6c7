package calc

import (
	"math"
	"strconv"
	"strings"
)

// Bounds of the magnitude range FormatValue prints in plain decimal notation.
const (
	plainMin = 1e-3
	plainMax = 1e7
)

// FormatValue formats v the way results are printed, one per output line.
//
// Digits are the shortest that round-trip to v. Values whose magnitude lies
// in [1e-3, 1e7) are written in plain decimal notation and always carry a
// fractional part ("7.0", "0.5", "-12.25"). Other finite values use
// scientific notation with a fractional mantissa and an unpadded exponent
// ("1.0E7", "1.5E-4"). Zero keeps its sign ("0.0", "-0.0") and the
// non-finite values are "Infinity", "-Infinity" and "NaN".
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}

		return "0.0"
	}

	if a := math.Abs(v); a >= plainMin && a < plainMax {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")

	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-0")

	if neg {
		exp = "-" + exp
	}

	return withFraction(mant) + "E" + exp
}

func withFraction(s string) string {
	if strings.ContainsRune(s, '.') {
		return s
	}

	return s + ".0"
}
