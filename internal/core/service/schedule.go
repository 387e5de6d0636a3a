package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/viperadnan-git/seeksim/internal/core/event"
	"github.com/viperadnan-git/seeksim/internal/core/track"
)

// ScheduleService resolves policies from a registry, runs them and
// announces every outcome on the event bus.
type ScheduleService struct {
	registry *track.Registry
	bus      event.Bus
}

func NewScheduleService(registry *track.Registry, bus event.Bus) *ScheduleService {
	return &ScheduleService{
		registry: registry,
		bus:      bus,
	}
}

type ScheduleRequest struct {
	Tracks    []int
	Start     int
	Policy    track.Policy
	Direction track.Direction
}

func (s *ScheduleService) Schedule(ctx context.Context, req ScheduleRequest) (track.Result, error) {
	log.Debug().
		Str("policy", string(req.Policy)).
		Str("direction", string(req.Direction)).
		Int("start", req.Start).
		Int("requests", len(req.Tracks)).
		Msg("schedule request")

	res, err := s.run(req)
	payload := event.ScheduleEvent{
		Policy:    req.Policy,
		Direction: req.Direction,
		Start:     req.Start,
		Requests:  len(req.Tracks),
		Result:    res,
	}
	if err != nil {
		payload.Error = err.Error()
		s.bus.Publish(ctx, event.Event{Type: event.EventScheduleRejected, Payload: payload})
		return track.Result{}, err
	}

	s.bus.Publish(ctx, event.Event{Type: event.EventScheduleCompleted, Payload: payload})
	return res, nil
}

func (s *ScheduleService) run(req ScheduleRequest) (track.Result, error) {
	strategy, err := s.registry.Get(req.Policy)
	if err != nil {
		return track.Result{}, err
	}
	return track.Run(strategy, req.Tracks, req.Start, req.Direction)
}

// Policies lists the registered policy names.
func (s *ScheduleService) Policies() []track.Policy {
	return s.registry.List()
}

// LogOutcomes subscribes a logger to schedule events. The returned func
// removes both subscriptions.
func LogOutcomes(bus event.Bus) func() {
	offDone := bus.Subscribe(event.EventScheduleCompleted, func(_ context.Context, e event.Event) error {
		p, ok := e.Payload.(event.ScheduleEvent)
		if !ok {
			return nil
		}
		log.Info().
			Str("policy", string(p.Result.Policy)).
			Str("direction", string(p.Result.Direction)).
			Int("start", p.Start).
			Int("requests", p.Requests).
			Int("total", p.Result.TotalMovement).
			Float64("avg", p.Result.AverageMovement).
			Msg("schedule completed")
		return nil
	})
	offRejected := bus.Subscribe(event.EventScheduleRejected, func(_ context.Context, e event.Event) error {
		p, ok := e.Payload.(event.ScheduleEvent)
		if !ok {
			return nil
		}
		log.Warn().
			Str("policy", string(p.Policy)).
			Int("requests", p.Requests).
			Str("error", p.Error).
			Msg("schedule rejected")
		return nil
	})
	return func() {
		offDone()
		offRejected()
	}
}
