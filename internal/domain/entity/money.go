package entity

import "github.com/shopspring/decimal"

// MoneyScale is the number of fraction digits stored for every amount.
const MoneyScale = 2

// MoneyTolerance is the largest difference treated as equal when comparing totals.
var MoneyTolerance = decimal.New(1, -MoneyScale)

// FromMinorUnits converts an integer amount in cents into a decimal amount.
func FromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -MoneyScale)
}

// RoundMoney rounds an amount to the stored scale.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// MoneyEqual reports whether two amounts differ by less than MoneyTolerance.
func MoneyEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(MoneyTolerance)
}
