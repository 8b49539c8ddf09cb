package series

import (
	"sort"

	"traydner_bot/internal/models"
)

// Series — упорядоченный буфер свечей по одной паре (symbol, resolution).
// Принадлежит ровно одной задаче раннера, поэтому без мьютекса.
type Series struct {
	symbol     string
	resolution string
	maxLen     int
	candles    []models.Candle
}

func New(symbol, resolution string, maxLen int) *Series {
	if maxLen <= 0 {
		maxLen = 500
	}
	return &Series{
		symbol:     symbol,
		resolution: resolution,
		maxLen:     maxLen,
		candles:    make([]models.Candle, 0, maxLen),
	}
}

func (s *Series) Symbol() string     { return s.symbol }
func (s *Series) Resolution() string { return s.resolution }
func (s *Series) Len() int           { return len(s.candles) }

// Append добавляет свечу в хвост. Свеча старше последней отбрасывается,
// совпадающий таймстемп перезаписывает последнюю (повторный фетч того же бара).
func (s *Series) Append(c models.Candle) bool {
	if n := len(s.candles); n > 0 {
		last := s.candles[n-1].Timestamp
		if c.Timestamp < last {
			return false
		}
		if c.Timestamp == last {
			s.candles[n-1] = c
			return true
		}
	}
	s.candles = append(s.candles, c)
	s.evict()
	return true
}

// ReplaceHistory загружает историю целиком: сортировка по времени, затем
// схлопывание дублей (последний выигрывает). Источник истории не гарантирует
// порядок, поэтому sort-then-validate обязателен, а не опционален.
func (s *Series) ReplaceHistory(candles []models.Candle) {
	sorted := make([]models.Candle, len(candles))
	copy(sorted, candles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	s.candles = s.candles[:0]
	for _, c := range sorted {
		if n := len(s.candles); n > 0 && s.candles[n-1].Timestamp == c.Timestamp {
			s.candles[n-1] = c
			continue
		}
		s.candles = append(s.candles, c)
	}
	s.evict()
}

// Window возвращает последние n свечей (меньше, если истории не хватает).
// Никогда не дополняет синтетикой.
func (s *Series) Window(n int) []models.Candle {
	if n <= 0 {
		return nil
	}
	if n > len(s.candles) {
		n = len(s.candles)
	}
	out := make([]models.Candle, n)
	copy(out, s.candles[len(s.candles)-n:])
	return out
}

// Closes — цены закрытия последних n свечей.
func (s *Series) Closes(n int) []float64 {
	w := s.Window(n)
	out := make([]float64, len(w))
	for i, c := range w {
		out[i] = c.Close
	}
	return out
}

func (s *Series) Last() (models.Candle, bool) {
	if len(s.candles) == 0 {
		return models.Candle{}, false
	}
	return s.candles[len(s.candles)-1], true
}

func (s *Series) evict() {
	if over := len(s.candles) - s.maxLen; over > 0 {
		s.candles = append(s.candles[:0], s.candles[over:]...)
	}
}
