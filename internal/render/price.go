package render

import (
	"github.com/shopspring/decimal"

	"github.com/snovatour/guideshop/internal/model"
)

// Число знаков дробной части для валют магазина.
const minorUnits = 2

// FormatPrice переводит сумму в минимальных единицах в строку вида "19.99 EUR".
func FormatPrice(amount int64, currency model.Currency) string {
	return decimal.New(amount, -minorUnits).StringFixed(minorUnits) + " " + string(currency)
}
