// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"fmt"

	"github.com/pdiddy/resume-screener/pkg/types"
)

// Default tier thresholds.
const (
	DefaultHighThreshold     = 0.65
	DefaultModerateThreshold = 0.45
)

// Tiers holds the lower bounds, inclusive, of the named relevance tiers.
type Tiers struct {
	High     float64
	Moderate float64
}

// DefaultTiers returns the standard thresholds.
func DefaultTiers() Tiers {
	return Tiers{High: DefaultHighThreshold, Moderate: DefaultModerateThreshold}
}

// TiersFromConfig builds validated tiers from cfg.
func TiersFromConfig(cfg types.RankingConfig) (Tiers, error) {
	t := Tiers{High: cfg.HighThreshold, Moderate: cfg.ModerateThreshold}
	if err := t.Validate(); err != nil {
		return Tiers{}, &types.ConfigurationError{Setting: "ranking", Err: err}
	}
	return t, nil
}

// Validate checks 0 <= Moderate <= High <= 1.
func (t Tiers) Validate() error {
	if t.Moderate < 0 || t.High > 1 {
		return fmt.Errorf("thresholds must lie in [0, 1], got high=%g moderate=%g", t.High, t.Moderate)
	}
	if t.Moderate > t.High {
		return fmt.Errorf("moderate threshold %g exceeds high threshold %g", t.Moderate, t.High)
	}
	return nil
}

// Tier maps a similarity score to its tier.
func (t Tiers) Tier(score float64) types.RelevanceTier {
	switch {
	case score >= t.High:
		return types.TierHighlyRelevant
	case score >= t.Moderate:
		return types.TierModerate
	default:
		return types.TierIrrelevant
	}
}
