package position

import "math"

// BuyQuantity — доля свободного кэша, сконвертированная в количество
// по текущей цене. Округление до 6 знаков, как принимает API.
func BuyQuantity(cash, capitalFraction, price float64) float64 {
	if price <= 0 || cash <= 0 || capitalFraction <= 0 {
		return 0
	}
	return RoundQty(cash * capitalFraction / price)
}

// RoundQty приводит количество к шагу 1e-6.
func RoundQty(qty float64) float64 {
	return math.Round(qty*1e6) / 1e6
}

// TooSmall — заявки мельче минимума площадки не отправляем.
func TooSmall(qty, minQty float64) bool {
	return qty < minQty
}
