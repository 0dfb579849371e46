// Package channel simulates bit errors on codewords and measures how well
// the (16, 8) code recovers from them.
package channel

import (
	"context"
	"errors"
	"math/rand"

	"github.com/pd0mz/go-qc16/bit"
	"github.com/pd0mz/go-qc16/fec"
	"golang.org/x/sync/errgroup"
)

// Patterns returns every 16 bit error pattern with the given number of bits
// set, in ascending order.
func Patterns(weight int) []uint16 {
	var out []uint16
	for e := 0; e < 0x10000; e++ {
		if bit.Weight16(uint16(e)) == weight {
			out = append(out, uint16(e))
		}
	}
	return out
}

// BSC is a binary symmetric channel flipping each bit with probability BER.
type BSC struct {
	BER  float64
	Rand *rand.Rand
}

// Apply sends word through the channel.
func (c BSC) Apply(word uint16) uint16 {
	if c.BER <= 0 {
		return word
	}
	for i := uint(0); i < 16; i++ {
		if c.BER >= 1 || c.Rand.Float64() < c.BER {
			word ^= 1 << i
		}
	}
	return word
}

// Result tallies decoding outcomes.
type Result struct {
	Trials       int `yaml:"trials"`
	Successes    int `yaml:"successes"`
	Miscorrected int `yaml:"miscorrected"`
	Declined     int `yaml:"declined"`
}

// Rate is the fraction of trials that decoded to the original data.
func (r Result) Rate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Successes) / float64(r.Trials)
}

func (r *Result) add(o Result) {
	r.Trials += o.Trials
	r.Successes += o.Successes
	r.Miscorrected += o.Miscorrected
	r.Declined += o.Declined
}

// trial corrupts the codeword of data with e and records the outcome. A
// declined syndrome can still yield the right data if only parity bits
// were hit.
func (r *Result) trial(data uint8, e uint16) {
	r.Trials++
	received := fec.QC16_8_Encode(data) ^ e
	block := received
	_, ok := fec.QC16_8_Correct(&block)
	if !ok {
		r.Declined++
	}
	got := fec.QC16_8_Decode(received)
	switch {
	case got == data:
		r.Successes++
	case ok:
		r.Miscorrected++
	}
}

// Exhaustive decodes every data byte under every error pattern of the given
// weight.
func Exhaustive(weight int) Result {
	var r Result
	patterns := Patterns(weight)
	for d := 0; d < 256; d++ {
		for _, e := range patterns {
			r.trial(uint8(d), e)
		}
	}
	return r
}

// RandomConfig describes a Monte Carlo run over a binary symmetric channel.
type RandomConfig struct {
	BER     float64 `yaml:"ber"`
	Trials  int     `yaml:"trials"`
	Workers int     `yaml:"workers"`
	Seed    int64   `yaml:"seed"`
}

// Random sends random data bytes through a BSC. Worker w draws from a source
// seeded with Seed+w, so results are reproducible for a given config.
func Random(ctx context.Context, cfg RandomConfig) (Result, error) {
	if cfg.BER < 0 || cfg.BER > 1 {
		return Result{}, errors.New("channel: bit error rate out of range [0, 1]")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	results := make([]Result, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		w := w
		trials := cfg.Trials / cfg.Workers
		if w < cfg.Trials%cfg.Workers {
			trials++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(w)))
			bsc := BSC{BER: cfg.BER, Rand: rng}
			for i := 0; i < trials; i++ {
				if i&0xfff == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				data := uint8(rng.Intn(256))
				results[w].trial(data, bsc.Apply(0))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}
