package euclid

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundFloat rounds x to places decimal places, half away from zero.
// Rounding happens on the shortest decimal representation of x, so
// 2.675 rounds to 2.68 even though its binary value is slightly lower.
// NaN and infinities are returned unchanged.
func RoundFloat(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// Round returns v with every coordinate rounded to places decimal places.
func (v Vector) Round(places int32) Vector {
	out := make([]float64, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = RoundFloat(x, places)
	}
	return newOwned(out)
}
