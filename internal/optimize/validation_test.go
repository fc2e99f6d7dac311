package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTargetsFillsDefaults(t *testing.T) {
	got, err := ValidateTargets(TargetParameters{})
	require.NoError(t, err)

	assert.Equal(t, "general audience", got.TargetAudience)
	assert.Equal(t, 8, got.TargetReadability)
	assert.Equal(t, "professional", got.TargetTone)
	assert.Equal(t, "engagement", got.OptimizationGoal)
}

func TestValidateTargetsKeepsProvidedValues(t *testing.T) {
	got, err := ValidateTargets(TargetParameters{
		TargetAudience:    "developers",
		TargetReadability: 12,
		TargetTone:        "Formal",
		OptimizationGoal:  "SEO",
	})
	require.NoError(t, err)

	assert.Equal(t, "developers", got.TargetAudience)
	assert.Equal(t, 12, got.TargetReadability)
	assert.Equal(t, "formal", got.TargetTone)
	assert.Equal(t, "seo", got.OptimizationGoal)
}

func TestValidateTargetsRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		params TargetParameters
	}{
		{"negative readability", TargetParameters{TargetReadability: -1}},
		{"readability too high", TargetParameters{TargetReadability: 35}},
		{"unknown tone", TargetParameters{TargetTone: "sarcastic"}},
		{"unknown goal", TargetParameters{OptimizationGoal: "world domination"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateTargets(tc.params)
			assert.ErrorIs(t, err, ErrInvalidTargetParameter)
		})
	}
}
