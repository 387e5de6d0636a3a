package track

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

var classic = []int{98, 183, 37, 122, 14, 124, 65, 67}

func TestSchedule_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		tracks  []int
		start   int
		policy  Policy
		dir     Direction
		visited []int
		total   int
		avg     float64
	}{
		{
			name: "sstf nearest first", tracks: classic, start: 53, policy: PolicySSTF,
			visited: []int{65, 67, 37, 14, 98, 122, 124, 183}, total: 236, avg: 29.5,
		},
		{
			name: "scan outward", tracks: classic, start: 53, policy: PolicySCAN, dir: DirectionOutward,
			visited: []int{65, 67, 98, 122, 124, 183, 37, 14}, total: 299, avg: 37.375,
		},
		{
			name: "scan inward includes split track", tracks: classic, start: 53, policy: PolicySCAN, dir: DirectionInward,
			visited: []int{65, 37, 14, 67, 98, 122, 124, 183}, total: 232, avg: 29,
		},
		{
			name: "scan defaults to inward", tracks: classic, start: 53, policy: PolicySCAN,
			visited: []int{65, 37, 14, 67, 98, 122, 124, 183}, total: 232, avg: 29,
		},
		{
			name: "single track under head sstf", tracks: []int{50}, start: 50, policy: PolicySSTF,
			visited: []int{50}, total: 0, avg: 0,
		},
		{
			name: "single track under head scan", tracks: []int{50}, start: 50, policy: PolicySCAN, dir: DirectionOutward,
			visited: []int{50}, total: 0, avg: 0,
		},
		{
			name: "head above every track outward", tracks: []int{10, 30, 20}, start: 40, policy: PolicySCAN, dir: DirectionOutward,
			visited: []int{30, 20, 10}, total: 30, avg: 10,
		},
		{
			name: "head above every track inward", tracks: []int{10, 30, 20}, start: 40, policy: PolicySCAN, dir: DirectionInward,
			visited: []int{30, 20, 10}, total: 30, avg: 10,
		},
		{
			name: "head below every track inward", tracks: []int{20, 10, 30}, start: 0, policy: PolicySCAN, dir: DirectionInward,
			visited: []int{10, 20, 30}, total: 30, avg: 10,
		},
		{
			name: "sstf tie goes to lower track", tracks: []int{60, 40}, start: 50, policy: PolicySSTF,
			visited: []int{40, 60}, total: 30, avg: 15,
		},
		{
			name: "duplicates are separate requests", tracks: []int{9, 5, 5}, start: 0, policy: PolicySSTF,
			visited: []int{5, 5, 9}, total: 9, avg: 3,
		},
		{
			name: "scan outward with duplicates", tracks: []int{40, 60, 60, 20, 40}, start: 50, policy: PolicySCAN, dir: DirectionOutward,
			visited: []int{60, 60, 40, 40, 20}, total: 50, avg: 10,
		},
		{
			name: "scan inward with duplicate split track", tracks: []int{40, 60, 60, 20, 40}, start: 50, policy: PolicySCAN, dir: DirectionInward,
			visited: []int{60, 40, 40, 20, 60}, total: 90, avg: 18,
		},
		{
			name: "scan inward with head on duplicate track", tracks: []int{40, 10, 40}, start: 40, policy: PolicySCAN, dir: DirectionInward,
			visited: []int{40, 10, 40}, total: 60, avg: 20,
		},
		{
			name: "largest distance that fits", tracks: []int{0}, start: math.MinInt + 1, policy: PolicySSTF,
			visited: []int{0}, total: math.MaxInt, avg: float64(math.MaxInt),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Schedule(tt.tracks, tt.start, tt.policy, tt.dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(res.Visited, tt.visited) {
				t.Fatalf("visited mismatch: got %v want %v", res.Visited, tt.visited)
			}
			if res.TotalMovement != tt.total {
				t.Fatalf("total movement: got %d want %d", res.TotalMovement, tt.total)
			}
			if res.AverageMovement != tt.avg {
				t.Fatalf("average movement: got %v want %v", res.AverageMovement, tt.avg)
			}
		})
	}
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	in := slices.Clone(classic)
	if _, err := Schedule(in, 53, PolicySCAN, DirectionOutward); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(in, classic) {
		t.Fatalf("input reordered: %v", in)
	}
}

func TestSchedule_RejectsInvalidInput(t *testing.T) {
	for _, p := range []Policy{PolicySSTF, PolicySCAN} {
		_, err := Schedule(nil, 0, p, DirectionInward)
		if !errors.Is(err, ErrNoTracks) || !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s with no tracks: got %v", p, err)
		}
	}

	if _, err := Schedule(classic, 53, PolicySCAN, "sideways"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("scan with bad direction: got %v", err)
	}
	if _, err := Schedule(classic, 53, "fifo", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown policy: got %v", err)
	}
	// SSTF has no direction to validate.
	if _, err := Schedule(classic, 53, PolicySSTF, "sideways"); err != nil {
		t.Fatalf("sstf should ignore direction: %v", err)
	}
}

func TestSchedule_RejectsOverflowingDistances(t *testing.T) {
	cases := []struct {
		name   string
		tracks []int
		start  int
		policy Policy
		dir    Direction
	}{
		{name: "single step past max int", tracks: []int{1}, start: math.MinInt + 1, policy: PolicySSTF},
		{name: "min int head", tracks: []int{0}, start: math.MinInt, policy: PolicySCAN},
		{name: "span across zero", tracks: []int{1 << 62, -(1 << 62)}, start: -(1 << 62) - 5, policy: PolicySCAN, dir: DirectionOutward},
		{name: "tracks at both extremes", tracks: []int{math.MinInt, math.MaxInt}, start: 0, policy: PolicySSTF},
		// Each step fits but the reversal doubles back over the span.
		{name: "total past max int", tracks: []int{0, math.MaxInt}, start: math.MaxInt / 2, policy: PolicySCAN, dir: DirectionOutward},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Schedule(tt.tracks, tt.start, tt.policy, tt.dir)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v (total %d)", err, res.TotalMovement)
			}
		})
	}
}

func TestSchedule_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(30)
		tracks := make([]int, n)
		for i := range tracks {
			tracks[i] = rng.Intn(200)
		}
		start := rng.Intn(220)

		for _, c := range []struct {
			p Policy
			d Direction
		}{{PolicySSTF, ""}, {PolicySCAN, DirectionInward}, {PolicySCAN, DirectionOutward}} {
			res, err := Schedule(tracks, start, c.p, c.d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			checkPermutation(t, tracks, res.Visited)
			checkConservation(t, start, res)

			switch {
			case c.p == PolicySSTF:
				checkGreedy(t, tracks, start, res.Visited)
			case c.d == DirectionOutward:
				checkRuns(t, res.Visited, true)
				checkSplit(t, tracks, start, res.Visited, DirectionOutward)
			default:
				checkRuns(t, res.Visited, false)
				checkSplit(t, tracks, start, res.Visited, DirectionInward)
			}

			shuffled := slices.Clone(tracks)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			again, err := Schedule(shuffled, start, c.p, c.d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(res, again) {
				t.Fatalf("%s/%s not deterministic:\n%+v\n%+v", c.p, c.d, res, again)
			}
		}
	}
}

func checkPermutation(t *testing.T, tracks, visited []int) {
	t.Helper()
	a, b := slices.Clone(tracks), slices.Clone(visited)
	slices.Sort(a)
	slices.Sort(b)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("visited %v is not a permutation of %v", visited, tracks)
	}
}

func checkConservation(t *testing.T, start int, res Result) {
	t.Helper()
	sum := abs(res.Visited[0] - start)
	for i := 1; i < len(res.Visited); i++ {
		sum += abs(res.Visited[i] - res.Visited[i-1])
	}
	if sum != res.TotalMovement {
		t.Fatalf("total movement %d, step sum %d", res.TotalMovement, sum)
	}
	if want := float64(sum) / float64(len(res.Visited)); res.AverageMovement != want {
		t.Fatalf("average movement %v, want %v", res.AverageMovement, want)
	}
}

func checkGreedy(t *testing.T, tracks []int, start int, visited []int) {
	t.Helper()
	remaining := slices.Clone(tracks)
	head := start
	for _, v := range visited {
		d := abs(v - head)
		for _, r := range remaining {
			if abs(r-head) < d {
				t.Fatalf("from %d chose %d but %d is closer", head, v, r)
			}
		}
		i := slices.Index(remaining, v)
		remaining = slices.Delete(remaining, i, i+1)
		head = v
	}
}

// checkRuns asserts the sequence is one monotonic run followed by a run in
// the opposite direction.
func checkRuns(t *testing.T, visited []int, ascendingFirst bool) {
	t.Helper()
	inOrder := func(a, b int, asc bool) bool {
		if asc {
			return a <= b
		}
		return a >= b
	}
	i := 1
	for i < len(visited) && inOrder(visited[i-1], visited[i], ascendingFirst) {
		i++
	}
	for j := i + 1; j < len(visited); j++ {
		if !inOrder(visited[j-1], visited[j], !ascendingFirst) {
			t.Fatalf("%v has more than two monotonic runs", visited)
		}
	}
}

// checkSplit asserts the sweep divides at the head: outward services every
// track at or above start before any track below it; inward services the
// tracks below start plus the nearest track at or above it first.
func checkSplit(t *testing.T, tracks []int, start int, visited []int, dir Direction) {
	t.Helper()
	var below, above []int
	for _, tr := range tracks {
		if tr < start {
			below = append(below, tr)
		} else {
			above = append(above, tr)
		}
	}
	slices.Sort(above)
	slices.Sort(below)

	first, second := above, below
	if dir == DirectionInward {
		first, second = below, above
		if len(above) > 0 {
			first = append(slices.Clone(below), above[0])
			second = above[1:]
		}
	}

	head := visited[:len(first)]
	for _, tr := range first {
		i := slices.Index(head, tr)
		if i < 0 {
			t.Fatalf("%s from %d: first run %v missing %d (tracks %v)", dir, start, head, tr, tracks)
		}
		head = slices.Delete(slices.Clone(head), i, i+1)
	}
	if len(visited)-len(first) != len(second) {
		t.Fatalf("%s from %d: second run has %d tracks, want %d", dir, start, len(visited)-len(first), len(second))
	}
}
