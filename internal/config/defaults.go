package config

import (
	"github.com/knadh/koanf/v2"
	"github.com/viperadnan-git/seeksim/internal/core/track"
)

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"scheduler.policy":    string(track.PolicySSTF),
		"scheduler.direction": string(track.DefaultDirection),

		"logging.level":  "info",
		"logging.format": "pretty",
	}

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return err
		}
	}
	return nil
}
