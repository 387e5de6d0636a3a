// Package shell implements the interactive track scheduling menu as an
// explicit state machine over plain readers and writers.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/viperadnan-git/seeksim/internal/core/service"
	"github.com/viperadnan-git/seeksim/internal/core/track"
)

type State int

const (
	StateAwaitSelection State = iota
	StateExecuting
	StateExit
)

func (s State) String() string {
	switch s {
	case StateAwaitSelection:
		return "await-selection"
	case StateExecuting:
		return "executing"
	case StateExit:
		return "exit"
	}
	return "unknown"
}

const menu = `****************************************
----------- Scheduling policy -----------
1. Shortest seek time first (SSTF)
2. Elevator scan (SCAN)
0. Exit
****************************************
`

// Scheduler runs one scheduling request.
type Scheduler interface {
	Schedule(ctx context.Context, req service.ScheduleRequest) (track.Result, error)
}

type Shell struct {
	in         *bufio.Reader
	out        io.Writer
	sched      Scheduler
	defaultDir track.Direction

	tracks []int
	state  State
	policy track.Policy
}

type Option func(*Shell)

// WithTracks preloads the request set so the shell skips collecting it.
func WithTracks(tracks []int) Option {
	return func(s *Shell) { s.tracks = tracks }
}

// WithDefaultDirection sets the direction used when the SCAN prompt is
// left blank.
func WithDefaultDirection(d track.Direction) Option {
	return func(s *Shell) { s.defaultDir = d }
}

func New(in io.Reader, out io.Writer, sched Scheduler, opts ...Option) *Shell {
	s := &Shell{
		in:         bufio.NewReader(in),
		out:        out,
		sched:      sched,
		defaultDir: track.DefaultDirection,
		state:      StateAwaitSelection,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Shell) State() State { return s.state }

// Run collects the request set (unless preloaded) and drives the menu
// until the user selects 0 or input ends.
func (s *Shell) Run(ctx context.Context) error {
	if len(s.tracks) == 0 {
		tracks, err := s.collectTracks()
		if errors.Is(err, io.EOF) {
			s.state = StateExit
			return nil
		}
		if err != nil {
			return err
		}
		s.tracks = tracks
	}

	for s.state != StateExit {
		next, err := s.step(ctx)
		if err != nil {
			return err
		}
		log.Debug().Str("from", s.state.String()).Str("to", next.String()).Msg("shell transition")
		s.state = next
	}
	return nil
}

func (s *Shell) step(ctx context.Context) (State, error) {
	switch s.state {
	case StateAwaitSelection:
		return s.awaitSelection()
	case StateExecuting:
		return s.execute(ctx)
	}
	return StateExit, nil
}

func (s *Shell) awaitSelection() (State, error) {
	s.print(menu)
	line, err := s.prompt("Select a policy: ")
	if err != nil {
		return s.onReadError(err)
	}

	choice := strings.TrimSpace(line)
	if choice == "0" {
		s.print("Exiting.\n")
		return StateExit, nil
	}
	p, err := track.ParsePolicy(choice)
	if err != nil {
		s.print("Invalid option, please try again.\n")
		return StateAwaitSelection, nil
	}
	s.policy = p
	return StateExecuting, nil
}

func (s *Shell) execute(ctx context.Context) (State, error) {
	line, err := s.prompt("Current head track: ")
	if err != nil {
		return s.onReadError(err)
	}
	start, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		s.printf("Invalid track number %q.\n", strings.TrimSpace(line))
		return StateAwaitSelection, nil
	}

	req := service.ScheduleRequest{Tracks: s.tracks, Start: start, Policy: s.policy}
	if s.policy == track.PolicySCAN {
		line, err := s.prompt(fmt.Sprintf("Scan direction (inward/outward) [%s]: ", s.defaultDir))
		if err != nil {
			return s.onReadError(err)
		}
		req.Direction = s.defaultDir
		if strings.TrimSpace(line) != "" {
			d, err := track.ParseDirection(line)
			if err != nil {
				s.printf("Error: %v\n", err)
				return StateAwaitSelection, nil
			}
			req.Direction = d
		}
	}

	res, err := s.sched.Schedule(ctx, req)
	if errors.Is(err, track.ErrInvalidInput) {
		s.printf("Error: %v\n", err)
		return StateAwaitSelection, nil
	}
	if err != nil {
		return StateExit, err
	}
	if err := WriteReport(s.out, res); err != nil {
		return StateExit, err
	}
	return StateAwaitSelection, nil
}

// collectTracks asks for the request count, then re-prompts until exactly
// that many track numbers are entered.
func (s *Shell) collectTracks() ([]int, error) {
	var n int
	for {
		line, err := s.prompt("Number of tracks to process: ")
		if err != nil {
			return nil, err
		}
		n, err = strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n > 0 {
			break
		}
		s.print("Please enter a positive whole number.\n")
	}

	for {
		line, err := s.prompt("Track numbers (separated by spaces): ")
		if err != nil {
			return nil, err
		}
		tracks, err := track.ParseTracks(line)
		switch {
		case err != nil:
			s.printf("Error: %v\n", err)
		case len(tracks) != n:
			s.printf("Track count mismatch (expected %d, got %d), please re-enter.\n", n, len(tracks))
		default:
			s.print("Tracks loaded.\n")
			return tracks, nil
		}
	}
}

func (s *Shell) onReadError(err error) (State, error) {
	if errors.Is(err, io.EOF) {
		return StateExit, nil
	}
	return StateExit, err
}

// prompt reads one line of any length. A final line without a newline
// is still returned; io.EOF only comes back once nothing is left.
func (s *Shell) prompt(msg string) (string, error) {
	s.print(msg)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) print(msg string) {
	io.WriteString(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
