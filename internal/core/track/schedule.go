package track

import (
	"fmt"
	"math"
	"slices"
)

// Schedule orders tracks under one of the built-in policies.
// An empty direction means DefaultDirection; SSTF ignores it.
func Schedule(tracks []int, start int, policy Policy, dir Direction) (Result, error) {
	s, err := builtin(policy)
	if err != nil {
		return Result{}, err
	}
	return Run(s, tracks, start, dir)
}

// Run orders tracks with an arbitrary strategy and measures the head's
// movement. tracks is not modified.
func Run(s Strategy, tracks []int, start int, dir Direction) (Result, error) {
	if len(tracks) == 0 {
		return Result{}, ErrNoTracks
	}

	res := Result{Policy: s.Name(), Start: start}
	if s.Directional() {
		if dir == "" {
			dir = DefaultDirection
		}
		if !dir.Valid() {
			return Result{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, dir)
		}
		res.Direction = dir
	}

	res.Sorted = slices.Clone(tracks)
	slices.Sort(res.Sorted)

	// Every distance a strategy computes lies within this span, so
	// strategies can subtract freely once it fits in an int.
	lo := min(start, res.Sorted[0])
	hi := max(start, res.Sorted[len(res.Sorted)-1])
	if lo < 0 && hi > math.MaxInt+lo {
		return Result{}, fmt.Errorf("%w: distance from %d to %d overflows", ErrInvalidInput, lo, hi)
	}

	res.Visited = s.Order(slices.Clone(res.Sorted), start, res.Direction)
	if len(res.Visited) != len(tracks) {
		return Result{}, fmt.Errorf("policy %s visited %d of %d tracks", s.Name(), len(res.Visited), len(tracks))
	}

	var err error
	res.TotalMovement, res.AverageMovement, err = measure(start, res.Visited)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// measure sums the seek distance of every step, starting from the head.
// Callers guarantee each single step fits in an int; the running total is
// checked here.
func measure(start int, visited []int) (int, float64, error) {
	total := 0
	head := start
	for _, t := range visited {
		d := abs(t - head)
		if total > math.MaxInt-d {
			return 0, 0, fmt.Errorf("%w: total movement overflows", ErrInvalidInput)
		}
		total += d
		head = t
	}
	return total, float64(total) / float64(len(visited)), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func builtin(p Policy) (Strategy, error) {
	switch p {
	case PolicySSTF:
		return NewSSTF(), nil
	case PolicySCAN:
		return NewSCAN(), nil
	}
	return nil, fmt.Errorf("%w: unknown policy %q", ErrInvalidInput, p)
}
