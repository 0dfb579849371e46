package channel

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pd0mz/go-qc16/bit"
	"github.com/stretchr/testify/require"
)

func TestPatterns(t *testing.T) {
	var tests = []struct {
		Weight int
		Count  int
		First  uint16
	}{
		{0, 1, 0x0000},
		{1, 16, 0x0001},
		{2, 120, 0x0003},
		{3, 560, 0x0007},
		{16, 1, 0xffff},
	}
	for _, test := range tests {
		p := Patterns(test.Weight)
		require.Len(t, p, test.Count, "weight %d", test.Weight)
		require.Equal(t, test.First, p[0], "weight %d", test.Weight)
	}
}

func TestExhaustive(t *testing.T) {
	for _, w := range []int{0, 1, 2} {
		r := Exhaustive(w)
		require.Equal(t, r.Trials, r.Successes, "weight %d", w)
		require.Zero(t, r.Miscorrected)
		require.Zero(t, r.Declined)
		require.Equal(t, 1.0, r.Rate())
	}

	// Beyond the correction radius: 240 of the 560 three bit patterns are
	// miscorrected and 320 declined, 24 of which only hit parity bits.
	r := Exhaustive(3)
	require.Equal(t, Result{Trials: 256 * 560, Successes: 256 * 24, Miscorrected: 256 * 240, Declined: 256 * 320}, r)
}

func TestBSC(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.Equal(t, uint16(0x1234), BSC{BER: 0, Rand: rng}.Apply(0x1234))
	require.Equal(t, uint16(0xedcb), BSC{BER: 1, Rand: rng}.Apply(0x1234))

	var flipped int
	bsc := BSC{BER: 0.25, Rand: rng}
	for i := 0; i < 1000; i++ {
		flipped += bit.Weight16(bsc.Apply(0))
	}
	require.InDelta(t, 4000, flipped, 400)
}

func TestRandom(t *testing.T) {
	ctx := context.Background()

	r, err := Random(ctx, RandomConfig{BER: 0, Trials: 1001, Workers: 4})
	require.NoError(t, err)
	require.Equal(t, Result{Trials: 1001, Successes: 1001}, r)

	cfg := RandomConfig{BER: 0.01, Trials: 20000, Workers: 3, Seed: 7}
	a, err := Random(ctx, cfg)
	require.NoError(t, err)
	b, err := Random(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, 20000, a.Trials)
	require.Greater(t, a.Rate(), 0.995)

	_, err = Random(ctx, RandomConfig{BER: 1.5, Trials: 1})
	require.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Random(cancelled, RandomConfig{BER: 0.1, Trials: 100, Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRateEmpty(t *testing.T) {
	require.Zero(t, Result{}.Rate())
}
