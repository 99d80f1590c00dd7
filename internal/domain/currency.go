package domain

import (
	"sort"
	"strconv"
)

// BaseCurrency is the currency every rate is expressed against.
const BaseCurrency = "USD"

// exchangeRates holds units of each currency per one USD. The table is static demo data.
var exchangeRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 150.5,
	"NGN": 1650.0,
}

// Rate returns the rate of currency against USD. Unknown currencies have rate 1.
func Rate(currency string) float64 {
	if r, ok := exchangeRates[currency]; ok {
		return r
	}
	return 1
}

// IsKnownCurrency reports whether the currency has an entry in the rate table.
func IsKnownCurrency(currency string) bool {
	_, ok := exchangeRates[currency]
	return ok
}

// SupportedCurrencies returns the currency codes of the rate table, sorted.
func SupportedCurrencies() []string {
	out := make([]string, 0, len(exchangeRates))
	for c := range exchangeRates {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ConvertAmount converts amount from one currency to another through USD.
func ConvertAmount(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	return amount / Rate(from) * Rate(to)
}

// ConvertPrice converts a decimal string for display, rounded to two decimals.
// Identical currencies and non-numeric amounts are returned unchanged.
func ConvertPrice(amount, from, to string) string {
	if from == to {
		return amount
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return amount
	}
	return strconv.FormatFloat(ConvertAmount(v, from, to), 'f', 2, 64)
}
