// Package marker finds and matches frame synchronisation markers: bit
// patterns that stay far, in Hamming distance, from every rotation of
// themselves so a receiver does not lock onto a shifted copy.
package marker

import (
	"context"
	"fmt"

	"github.com/pd0mz/go-qc16/bit"
	"golang.org/x/sync/errgroup"
)

const (
	// Width of the default marker, in bits.
	Width = 24
	// Default marker. Every rotation of it differs in at least 12 bits.
	Default uint32 = 0x0159a7
)

func mask(width int) uint32 {
	if width <= 0 {
		return 0
	}
	if width >= 32 {
		return 0xffffffff
	}
	return 0xffffffff >> uint(32-width)
}

// Distances returns the Hamming distance between m and each of its
// rotations by 1 to width-1 bits. Widths outside [2, 32] have no rotations.
func Distances(m uint32, width int) []int {
	if width < 2 || width > 32 {
		return nil
	}
	var (
		mk  = mask(width)
		src = uint64(m&mk) | uint64(m&mk)<<uint(width)
		out = make([]int, 0, width-1)
	)
	for i := 1; i < width; i++ {
		rot := uint32(src>>uint(i)) & mk
		out = append(out, bit.Distance(m&mk, rot))
	}
	return out
}

// MinDistance is the smallest of Distances, or 0 if there are none.
func MinDistance(m uint32, width int) int {
	if width < 2 || width > 32 {
		return 0
	}
	min := width
	for _, d := range Distances(m, width) {
		if d < min {
			min = d
		}
	}
	return min
}

// Match reports whether window carries m with at most tolerance bit errors.
func Match(window, m uint32, width, tolerance int) bool {
	mk := mask(width)
	return bit.Distance(window&mk, m&mk) <= tolerance
}

type candidate struct {
	value    uint32
	distance int
}

// Search exhaustively looks for the width bit marker with the largest
// minimum rotation distance, splitting the range across workers. Of equally
// good markers the smallest value wins. The all ones pattern is excluded.
func Search(ctx context.Context, width, workers int) (uint32, int, error) {
	if width < 2 || width > 32 {
		return 0, 0, fmt.Errorf("marker: width %d out of range [2, 32]", width)
	}
	if workers < 1 {
		workers = 1
	}

	var (
		end   = uint64(mask(width))
		chunk = (end + uint64(workers) - 1) / uint64(workers)
		best  = make([]candidate, workers)
	)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := uint64(w)*chunk, uint64(w+1)*chunk
		if hi > end {
			hi = end
		}
		g.Go(func() error {
			for v := lo; v < hi; v++ {
				if v&0xffff == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if d := MinDistance(uint32(v), width); d > best[w].distance {
					best[w] = candidate{value: uint32(v), distance: d}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	var result candidate
	for _, c := range best {
		if c.distance > result.distance {
			result = c
		}
	}
	return result.value, result.distance, nil
}
