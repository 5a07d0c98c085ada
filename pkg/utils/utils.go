package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// CentPlaces is the number of minor-unit places amounts are rounded to.
const CentPlaces int32 = 2

// CeilCents rounds an amount up to the next whole cent
func CeilCents(value decimal.Decimal) decimal.Decimal {
	return value.RoundCeil(CentPlaces)
}

// IsFinite reports whether a float64 is a finite number
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
