package engine

import (
	"math"
	"math/rand"
	"testing"
)

func TestTileForRollBoundaries(t *testing.T) {
	tests := []struct {
		roll int
		want int
	}{
		{1, 128},
		{2, 64},
		{3, 64},
		{4, 32},
		{7, 32},
		{8, 16},
		{15, 16},
		{16, 8},
		{31, 8},
		{32, 4},
		{63, 4},
		{64, 2},
		{255, 2},
	}

	for _, tt := range tests {
		if got := tileForRoll(tt.roll); got != tt.want {
			t.Errorf("tileForRoll(%d) = %d, want %d", tt.roll, got, tt.want)
		}
	}
}

func TestTileForRollCoversAllRolls(t *testing.T) {
	counts := make(map[int]int)
	for roll := 1; roll <= rollMax; roll++ {
		counts[tileForRoll(roll)]++
	}

	want := map[int]int{2: 192, 4: 32, 8: 16, 16: 8, 32: 4, 64: 2, 128: 1}
	for value, n := range want {
		if counts[value] != n {
			t.Errorf("rolls mapping to %d = %d, want %d", value, counts[value], n)
		}
	}
	if len(counts) != len(want) {
		t.Errorf("unexpected tile values produced: %v", counts)
	}
}

func TestOdds(t *testing.T) {
	odds := Odds()

	if len(odds) != 7 {
		t.Fatalf("Odds() length = %d, want 7", len(odds))
	}
	if odds[0].Value != 2 || odds[0].Weight != 192 {
		t.Errorf("first odd = %+v, want {2 192}", odds[0])
	}
	if last := odds[len(odds)-1]; last.Value != MaxValue || last.Weight != 1 {
		t.Errorf("last odd = %+v, want {128 1}", last)
	}

	total := 0
	sum := 0.0
	for i, o := range odds {
		total += o.Weight
		sum += o.Probability()
		if i > 0 && o.Value != odds[i-1].Value*2 {
			t.Errorf("odds[%d].Value = %d, want %d", i, o.Value, odds[i-1].Value*2)
		}
	}
	if total != rollMax {
		t.Errorf("total weight = %d, want %d", total, rollMax)
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %f, want 1", sum)
	}
}

func TestDrawUsesFullRange(t *testing.T) {
	lowest := &scriptedSource{rolls: []int{1}}
	if got := Draw(lowest); got != 128 {
		t.Errorf("Draw(roll 1) = %d, want 128", got)
	}
	highest := &scriptedSource{rolls: []int{rollMax}}
	if got := Draw(highest); got != 2 {
		t.Errorf("Draw(roll 255) = %d, want 2", got)
	}
}

func TestDrawDistribution(t *testing.T) {
	const samples = 255 * 2000
	rng := rand.New(rand.NewSource(42))

	counts := make(map[int]int)
	for range samples {
		counts[Draw(rng)]++
	}

	for _, o := range Odds() {
		expected := o.Probability() * samples
		// five standard deviations of a binomial count
		tolerance := 5 * math.Sqrt(expected*(1-o.Probability()))
		if diff := math.Abs(float64(counts[o.Value]) - expected); diff > tolerance {
			t.Errorf("value %d drawn %d times, want %.0f ± %.0f", o.Value, counts[o.Value], expected, tolerance)
		}
	}
}
