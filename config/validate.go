package config

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tintkit/tint/icon"
	"github.com/tintkit/tint/key"
	"github.com/tintkit/tint/palette"
)

func intBetween(low, high int) func(any) error {
	return func(v any) error {
		n, ok := v.(int)
		if !ok || n < low || n > high {
			return fmt.Errorf("must be an integer from %d to %d", low, high)
		}
		return nil
	}
}

func parsesAsColor(v any) error {
	s, _ := v.(string)
	_, err := palette.Parse(s)
	return err
}

var validators = map[string]func(any) error{
	key.TransformDefaultPercent: intBetween(0, 100),
	key.ShimmerWidth:            intBetween(1, 64),
	key.ShimmerFPS:              intBetween(1, 120),
	key.RecentLimit:             intBetween(0, 1000),
	key.ShimmerBase:             parsesAsColor,
	key.ShimmerHighlight:        parsesAsColor,
	key.LogsLevel: func(v any) error {
		s, _ := v.(string)
		_, err := logrus.ParseLevel(s)
		return err
	},
	key.IconsVariant: func(v any) error {
		s, _ := v.(string)
		if !lo.Contains(icon.AvailableVariants(), s) {
			return fmt.Errorf("must be one of %v", icon.AvailableVariants())
		}
		return nil
	},
}

// Validate checks a value about to be stored under k.
func Validate(k string, v any) error {
	validate, ok := validators[k]
	if !ok {
		return nil
	}
	if err := validate(v); err != nil {
		return fmt.Errorf("invalid value %v for %s: %w", v, k, err)
	}
	return nil
}
