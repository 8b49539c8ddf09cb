package models

import "time"

// PositionSide кодируется так же, как в снапшоте стейта: -1/0/1.
type PositionSide int

const (
	PositionShort PositionSide = -1
	PositionFlat  PositionSide = 0
	PositionLong  PositionSide = 1
)

func (p PositionSide) String() string {
	switch p {
	case PositionLong:
		return "LONG"
	case PositionShort:
		return "SHORT"
	default:
		return "FLAT"
	}
}

// Position — состояние по одному символу. Инвариант: EntryPrice == nil
// ровно тогда, когда Side == PositionFlat.
type Position struct {
	Symbol     string
	Side       PositionSide
	EntryPrice *float64
	LastSignal Side // последний принятый сигнал, для дедупликации
	Updated    time.Time
}

func NewFlatPosition(symbol string) Position {
	return Position{Symbol: symbol, Side: PositionFlat}
}

func (p Position) Open() bool { return p.Side != PositionFlat }
