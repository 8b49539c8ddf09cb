package models

type StrategyType string

const (
	StrategyTrendCross StrategyType = "trendcross"
	StrategyMeanRev    StrategyType = "meanrev"
	StrategyMomentum   StrategyType = "momentum"
	StrategySMACross   StrategyType = "smacross"
)

// Side — сторона сигнала: "BUY"/"SELL" или пустая строка (hold).
type Side string

const (
	SideNone Side = ""
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type Signal struct {
	Symbol   string
	Side     Side // "BUY"/"SELL"/""
	Price    float64
	Strategy StrategyType
	Reason   string
	// Crossed = true для сигнала от свежего пересечения (high confidence),
	// false для trend-continuation.
	Crossed bool
}

func (s Signal) Hold() bool { return s.Side == SideNone }
