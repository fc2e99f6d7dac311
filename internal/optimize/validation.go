package optimize

import (
	"fmt"
	"strings"
)

const (
	defaultAudience    = "general audience"
	defaultReadability = 8
	defaultTone        = "professional"
	defaultGoal        = "engagement"

	maxReadabilityGrade = 20
)

var validTones = map[string]bool{
	"formal":        true,
	"casual":        true,
	"expert":        true,
	"persuasive":    true,
	"neutral":       true,
	"professional":  true,
	"friendly":      true,
	"authoritative": true,
}

var validGoals = map[string]bool{
	"engagement": true,
	"seo":        true,
	"conversion": true,
	"awareness":  true,
}

// ValidateTargets fills defaults for absent fields and rejects values that
// are present but out of range or outside the known enums. Malformed targets
// are never silently defaulted.
func ValidateTargets(p TargetParameters) (TargetParameters, error) {
	if p.TargetAudience == "" {
		p.TargetAudience = defaultAudience
	}

	if p.TargetReadability == 0 {
		p.TargetReadability = defaultReadability
	}
	if p.TargetReadability < 1 || p.TargetReadability > maxReadabilityGrade {
		return p, invalidParam("target_readability",
			fmt.Sprintf("must be between 1 and %d, got %d", maxReadabilityGrade, p.TargetReadability))
	}

	if p.TargetTone == "" {
		p.TargetTone = defaultTone
	} else {
		p.TargetTone = strings.ToLower(strings.TrimSpace(p.TargetTone))
		if !validTones[p.TargetTone] {
			return p, invalidParam("target_tone", fmt.Sprintf("unrecognized value %q", p.TargetTone))
		}
	}

	if p.OptimizationGoal == "" {
		p.OptimizationGoal = defaultGoal
	} else {
		p.OptimizationGoal = strings.ToLower(strings.TrimSpace(p.OptimizationGoal))
		if !validGoals[p.OptimizationGoal] {
			return p, invalidParam("optimization_goal", fmt.Sprintf("unrecognized value %q", p.OptimizationGoal))
		}
	}

	return p, nil
}
