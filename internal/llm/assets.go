package llm

import "strings"

// ParseTextAssets recovers an asset bundle from a plain-text model response
// when JSON decoding fails. It scans for section headers and bullet lines,
// then fills anything too sparse from the defaults.
func ParseTextAssets(text string) AssetBundle {
	var bundle AssetBundle
	section := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "headline"):
			section = "headlines"
		case strings.Contains(lower, "meta description"):
			section = "meta_description"
		case strings.Contains(lower, "faq"):
			section = "faqs"
		case strings.Contains(lower, "cta"), strings.Contains(lower, "call to action"):
			section = "cta_options"
		case strings.Contains(lower, "summary"):
			section = "summary"
		case strings.Contains(lower, "keyword"):
			section = "keywords"
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "• "):
			item := strings.TrimSpace(line[2:])
			switch {
			case section == "headlines" && len(item) > 10:
				bundle.Headlines = append(bundle.Headlines, item)
			case section == "cta_options" && len(item) > 5:
				bundle.CTAOptions = append(bundle.CTAOptions, item)
			case section == "keywords" && len(item) > 2:
				bundle.Keywords = append(bundle.Keywords, item)
			}
		}
	}

	defaults := DefaultAssets()
	if len(bundle.Headlines) < 3 {
		bundle.Headlines = defaults.Headlines
	}
	if bundle.MetaDescription == "" {
		bundle.MetaDescription = defaults.MetaDescription
	}
	if len(bundle.FAQs) < 3 {
		bundle.FAQs = defaults.FAQs
	}
	if len(bundle.CTAOptions) < 3 {
		bundle.CTAOptions = defaults.CTAOptions
	}
	if bundle.Summary == "" {
		bundle.Summary = defaults.Summary
	}
	if len(bundle.Keywords) == 0 {
		bundle.Keywords = defaults.Keywords
	}
	if len(bundle.SocialMediaPosts) == 0 {
		bundle.SocialMediaPosts = defaults.SocialMediaPosts
	}
	return bundle
}

// DefaultAssets is the static bundle served when asset generation fails
// entirely. The caller still gets a complete, well-formed response.
func DefaultAssets() AssetBundle {
	return AssetBundle{
		Headlines: []string{
			"Transform Your Content with AI-Powered Optimization",
			"Boost Engagement with Smart Content Enhancement",
			"Professional Content Optimization Made Easy",
		},
		MetaDescription: "Optimize your content with AI-powered tools for better readability, SEO, and engagement. Get actionable recommendations instantly.",
		FAQs: []FAQ{
			{
				Question: "What is content optimization?",
				Answer:   "Content optimization is the process of improving your content's readability, SEO performance, and engagement potential using data-driven insights.",
			},
			{
				Question: "How does AI help with content optimization?",
				Answer:   "AI analyzes your content for readability, tone, structure, and SEO factors, then provides specific recommendations for improvement.",
			},
			{
				Question: "What metrics are analyzed?",
				Answer:   "We analyze readability scores, keyword density, heading structure, tone detection, and passive voice usage among other factors.",
			},
		},
		CTAOptions: []string{
			"Optimize Your Content Now",
			"Get Started Today",
			"Improve Your Content",
			"Try Content Optimization",
		},
		Summary:  "This content provides comprehensive guidance on optimizing written material for better performance and engagement.",
		Keywords: []string{"content optimization", "SEO", "readability", "AI tools", "content marketing"},
		SocialMediaPosts: map[string]string{
			"twitter":  "\U0001F680 Optimize your content with AI! Get instant feedback on readability, SEO, and engagement. #ContentMarketing #AI",
			"linkedin": "Transform your content strategy with AI-powered optimization. Analyze readability, improve SEO, and boost engagement with data-driven insights.",
			"facebook": "Want better content performance? Our AI tool analyzes your writing and provides actionable recommendations to improve readability and engagement!",
		},
	}
}
