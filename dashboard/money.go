package dashboard

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"shopmonitor/models"
)

// Money formats an amount with two decimals and no currency sign. The
// exact binary value of amount is rounded half away from zero, so 1.005
// (stored as 1.00499...) prints as 1.00.
func Money(amount float64) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return exactDecimal(amount).StringFixed(2)
}

// Dollars formats an amount as $ plus two decimals.
func Dollars(amount float64) string {
	return "$" + Money(amount)
}

// exactDecimal converts f without shortening it: f = mant * 2^exp is
// rewritten as mant * 5^-exp * 10^exp.
func exactDecimal(f float64) decimal.Decimal {
	frac, exp := math.Frexp(f)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow), int32(exp))
}

func sumTotals(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(decimal.NewFromFloat(s.Total))
	}
	return total
}
