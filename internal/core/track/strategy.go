package track

import "sort"

// Strategy orders a batch of requests for the head to visit.
// Implementations receive the requests sorted ascending, may consume the
// slice and can assume len(sorted) > 0.
type Strategy interface {
	Name() Policy
	// Directional reports whether the strategy honours a sweep direction.
	Directional() bool
	Order(sorted []int, start int, dir Direction) []int
}

// SSTF always services the pending request closest to the head.
// Equidistant requests resolve to the lower track number.
type SSTF struct{}

func NewSSTF() *SSTF { return &SSTF{} }

func (*SSTF) Name() Policy      { return PolicySSTF }
func (*SSTF) Directional() bool { return false }

// Order walks outward from the head. Serviced requests always form a
// contiguous run of the sorted slice, so the nearest pending request is
// one of the two neighbours of that run.
func (*SSTF) Order(sorted []int, start int, _ Direction) []int {
	order := make([]int, 0, len(sorted))
	hi := sort.SearchInts(sorted, start)
	lo := hi - 1
	head := start
	for lo >= 0 || hi < len(sorted) {
		var next int
		switch {
		case lo < 0:
			next = sorted[hi]
			hi++
		case hi >= len(sorted):
			next = sorted[lo]
			lo--
		case head-sorted[lo] <= sorted[hi]-head:
			next = sorted[lo]
			lo--
		default:
			next = sorted[hi]
			hi++
		}
		order = append(order, next)
		head = next
	}
	return order
}

// SCAN sweeps in one direction from the head, then reverses.
type SCAN struct{}

func NewSCAN() *SCAN { return &SCAN{} }

func (*SCAN) Name() Policy      { return PolicySCAN }
func (*SCAN) Directional() bool { return true }

// Order splits the requests at the first track not below the head.
// Outward visits the split and everything above it ascending, then the
// rest descending. Inward visits from the split down to the lowest track,
// then the tracks above the split ascending.
func (*SCAN) Order(sorted []int, start int, dir Direction) []int {
	order := make([]int, 0, len(sorted))
	split := sort.SearchInts(sorted, start)

	if dir == DirectionOutward {
		order = append(order, sorted[split:]...)
		for i := split - 1; i >= 0; i-- {
			order = append(order, sorted[i])
		}
		return order
	}

	last := min(split, len(sorted)-1)
	for i := last; i >= 0; i-- {
		order = append(order, sorted[i])
	}
	return append(order, sorted[last+1:]...)
}
