package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAssetsComplete(t *testing.T) {
	a := DefaultAssets()

	assert.Len(t, a.Headlines, 3)
	assert.NotEmpty(t, a.MetaDescription)
	assert.Len(t, a.FAQs, 3)
	assert.Len(t, a.CTAOptions, 4)
	assert.NotEmpty(t, a.Summary)
	assert.NotEmpty(t, a.Keywords)
	for _, platform := range []string{"twitter", "linkedin", "facebook"} {
		assert.Contains(t, a.SocialMediaPosts, platform)
	}
}

func TestParseTextAssetsExtractsBullets(t *testing.T) {
	text := `Here are your headlines:
- Boost Your Content Performance Today
- Smart Writing Improvements That Work
- Practical Tips For Better Articles

CTA options:
- Start Your Free Trial
- Book a Demo Today
- Download the Guide

Keywords:
- content strategy
- optimization
- engagement`

	a := ParseTextAssets(text)

	require.Len(t, a.Headlines, 3)
	assert.Equal(t, "Boost Your Content Performance Today", a.Headlines[0])
	assert.Equal(t, []string{"Start Your Free Trial", "Book a Demo Today", "Download the Guide"}, a.CTAOptions)
	assert.Equal(t, []string{"content strategy", "optimization", "engagement"}, a.Keywords)

	// sections the text never provided come from the defaults
	defaults := DefaultAssets()
	assert.Equal(t, defaults.MetaDescription, a.MetaDescription)
	assert.Equal(t, defaults.FAQs, a.FAQs)
	assert.Equal(t, defaults.SocialMediaPosts, a.SocialMediaPosts)
}

func TestParseTextAssetsSparseInputFallsBack(t *testing.T) {
	a := ParseTextAssets("nothing useful in here")
	defaults := DefaultAssets()

	assert.Equal(t, defaults.Headlines, a.Headlines)
	assert.Equal(t, defaults.CTAOptions, a.CTAOptions)
	assert.Equal(t, defaults.Keywords, a.Keywords)
}

func TestParseTextAssetsSkipsShortBullets(t *testing.T) {
	text := `Headlines:
- tiny
- This Line Is Long Enough To Keep Around
- So Is This One With Plenty Of Characters
- And A Third To Meet The Minimum Count`

	a := ParseTextAssets(text)

	require.Len(t, a.Headlines, 3)
	assert.NotContains(t, a.Headlines, "tiny")
}
