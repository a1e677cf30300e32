package swfloat

import (
	"fmt"
	"strconv"
)

// This file implements the diagnostic glue spec §1 calls out as "mentioned
// as an interface only": the hex and triplet strings behind Float16/32/64's
// ToHexString and ToTripletString, plus formatFloat, the fmt.Formatter
// helper those types share, grounded on the teacher's U128.String/Format
// conventions.

func (f fpFormat) hexDigits() int { return int(f.W+3) / 4 }

func (f fpFormat) hexString(raw uint64) string {
	return fmt.Sprintf("0x%0*X", f.hexDigits(), raw)
}

func (f fpFormat) tripletString(raw uint64) string {
	p := f.decompose(raw)
	sign := "+"
	if p.sign == 1 {
		sign = "-"
	}

	var exp string
	switch p.class {
	case fpZero:
		exp = "0"
	case fpInfinity:
		exp = "inf"
	case fpNaN:
		exp = "nan"
	default:
		exp = strconv.FormatInt(p.exp, 10)
	}

	return fmt.Sprintf("{%s, %s, 0x%X}", sign, exp, p.sig)
}

// formatFloat implements fmt.Formatter for a value that also has a host
// float64 equivalent: numeric verbs delegate to the native formatter,
// 'x'/'X' print the raw bits, everything else falls back to ToHexString.
func formatFloat(s fmt.State, c rune, hex string, asFloat64 float64) {
	switch c {
	case 'x', 'X':
		fmt.Fprint(s, hex)
	case 'f', 'F', 'e', 'E', 'g', 'G', 'v':
		fmt.Fprintf(s, fmt.FormatString(s, c), asFloat64)
	default:
		fmt.Fprint(s, hex)
	}
}
