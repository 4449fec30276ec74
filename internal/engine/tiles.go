package engine

// Source is the slice of *math/rand.Rand the engine draws from.
// Tests substitute a scripted source to force pending values.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// rollMax is the upper end of the uniform draw; rolls land in [1, rollMax].
const rollMax = 255

// bucket maps every roll up to and including Upper onto Value.
type bucket struct {
	Upper int
	Value int
}

// buckets is ordered by Upper. Each larger tile is half as likely as the
// next smaller one, except 2 which takes the remaining 192 rolls.
var buckets = []bucket{
	{Upper: 1, Value: 128},
	{Upper: 3, Value: 64},
	{Upper: 7, Value: 32},
	{Upper: 15, Value: 16},
	{Upper: 31, Value: 8},
	{Upper: 63, Value: 4},
	{Upper: rollMax, Value: 2},
}

// tileForRoll maps a roll in [1, 255] to its tile value.
// Rolls outside that range clamp to the nearest bucket.
func tileForRoll(roll int) int {
	for _, b := range buckets {
		if roll <= b.Upper {
			return b.Value
		}
	}
	return buckets[len(buckets)-1].Value
}

// Draw returns a tile value from src with the fixed bucket distribution.
func Draw(src Source) int {
	return tileForRoll(src.Intn(rollMax) + 1)
}

// Odd describes how likely one tile value is to be drawn.
type Odd struct {
	Value  int
	Weight int // number of rolls out of 255 that produce Value
}

// Probability returns Weight / 255.
func (o Odd) Probability() float64 {
	return float64(o.Weight) / rollMax
}

// Odds returns the draw distribution, smallest tile first.
func Odds() []Odd {
	odds := make([]Odd, 0, len(buckets))
	lower := 0
	for _, b := range buckets {
		odds = append(odds, Odd{Value: b.Value, Weight: b.Upper - lower})
		lower = b.Upper
	}
	// buckets run from rarest to commonest; present smallest value first
	for i, j := 0, len(odds)-1; i < j; i, j = i+1, j-1 {
		odds[i], odds[j] = odds[j], odds[i]
	}
	return odds
}
