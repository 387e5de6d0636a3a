package track

import (
	"fmt"
	"strconv"
	"strings"
)

// Policy names a disk scheduling algorithm.
type Policy string

const (
	PolicySSTF Policy = "sstf"
	PolicySCAN Policy = "scan"
)

// Direction selects which side of the head a SCAN sweep services first.
// Inward moves toward lower track numbers, outward toward higher ones.
type Direction string

const (
	DirectionInward  Direction = "inward"
	DirectionOutward Direction = "outward"
)

// DefaultDirection is used when a sweep is requested without a direction.
const DefaultDirection = DirectionInward

func (d Direction) Valid() bool {
	return d == DirectionInward || d == DirectionOutward
}

// Result is the outcome of scheduling one batch of requests.
type Result struct {
	Policy          Policy    `json:"policy"`
	Direction       Direction `json:"direction,omitempty"`
	Start           int       `json:"start"`
	Sorted          []int     `json:"sorted"`
	Visited         []int     `json:"visited"`
	TotalMovement   int       `json:"total_movement"`
	AverageMovement float64   `json:"average_movement"`
}

// ParsePolicy accepts a policy name or its menu selector ("1" for SSTF,
// "2" for SCAN).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(PolicySSTF):
		return PolicySSTF, nil
	case "2", string(PolicySCAN):
		return PolicySCAN, nil
	}
	return "", fmt.Errorf("%w: unknown policy %q", ErrInvalidInput, s)
}

func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: direction must be %q or %q, got %q",
			ErrInvalidInput, DirectionInward, DirectionOutward, s)
	}
	return d, nil
}

// ParseTracks reads track numbers separated by whitespace or commas.
func ParseTracks(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	tracks := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: track %q is not an integer", ErrInvalidInput, f)
		}
		tracks = append(tracks, n)
	}
	return tracks, nil
}
