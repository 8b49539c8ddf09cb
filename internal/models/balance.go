package models

type Market string

const (
	MarketCrypto Market = "crypto"
	MarketStocks Market = "stocks"
	MarketForex  Market = "forex"
)

// Balance — счёт на стороне Traydner: кэш плюс холдинги по классам рынка.
type Balance struct {
	Cash   float64            `json:"cash"`
	Crypto map[string]float64 `json:"crypto"`
	Stocks map[string]float64 `json:"stocks"`
	Forex  map[string]float64 `json:"forex"`
}

// Holding возвращает количество символа в нужном классе рынка.
func (b Balance) Holding(market Market, symbol string) float64 {
	switch market {
	case MarketCrypto:
		return b.Crypto[symbol]
	case MarketStocks:
		return b.Stocks[symbol]
	case MarketForex:
		return b.Forex[symbol]
	}
	return 0
}

// TradeResult — подтверждение исполненной заявки.
type TradeResult struct {
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}
