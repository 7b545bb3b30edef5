package utils

import (
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"

	playground "github.com/consensys/gnark-playground"
)

var curves map[string]ecc.ID

func init() {
	curves = make(map[string]ecc.ID)
	for _, c := range playground.Curves() {
		fHex := c.ScalarField().Text(16)
		curves[fHex] = c
	}
}

// FieldToCurve returns the supported curve whose scalar field is q, or
// ecc.UNKNOWN if none matches.
func FieldToCurve(q *big.Int) ecc.ID {
	fHex := q.Text(16)
	curve, ok := curves[fHex]
	if !ok {
		return ecc.UNKNOWN
	}
	return curve
}

// CurveByName returns the supported curve named name, matched
// case-insensitively with "-" and "_" interchangeable, or ecc.UNKNOWN if none
// matches.
func CurveByName(name string) ecc.ID {
	normalize := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "-", "_")
	}
	for _, c := range playground.Curves() {
		if normalize(c.String()) == normalize(name) {
			return c
		}
	}
	return ecc.UNKNOWN
}
