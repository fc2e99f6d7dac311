package gemini

import (
	"fmt"
	"strings"

	"content-optimizer/internal/llm"
)

const assetsContentLimit = 1000

func buildRewritePrompt(input llm.RewriteInput) string {
	improvements := "Improve overall readability and engagement"
	if len(input.Improvements) > 0 {
		var b strings.Builder
		for _, msg := range input.Improvements {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
		improvements = strings.TrimRight(b.String(), "\n")
	}

	t := input.Targets
	return fmt.Sprintf(`Please rewrite the following content with these specific improvements:

%s

Target Requirements:
- Audience: %s
- Reading Level: Grade %d (use simpler sentences and vocabulary)
- Tone: %s
- Goal: %s

IMPORTANT FORMATTING REQUIREMENTS:
1. Use proper Markdown formatting with headers (# ## ###)
2. Add a compelling H1 title at the beginning
3. Structure content with clear sections using H2 and H3 headers
4. Use bullet points and numbered lists where appropriate
5. Make paragraphs concise (2-3 sentences max)
6. Add bold text for **key points** and emphasis
7. Include relevant subheadings to break up content
8. Ensure minimum 300 words for better SEO
9. Use simple vocabulary suitable for grade %d reading level

Original Content:
%s

Please provide a well-structured, engaging rewrite in Markdown format that addresses all the above requirements.`,
		improvements, t.Audience, t.Readability, t.Tone, t.Goal, t.Readability, input.Content)
}

func buildAssetsPrompt(content string, targets llm.TargetParams) string {
	if len(content) > assetsContentLimit {
		content = content[:assetsContentLimit]
	}

	return fmt.Sprintf(`Based on the following content, generate comprehensive marketing and SEO assets:

Content: %s

Target Audience: %s
Target Tone: %s
Optimization Goal: %s

Respond with a JSON object of this exact structure:
{
  "headlines": ["headline1", "headline2", "headline3"],
  "meta_description": "SEO-optimized meta description under 155 characters",
  "faqs": [
    {"question": "question1", "answer": "answer1"},
    {"question": "question2", "answer": "answer2"},
    {"question": "question3", "answer": "answer3"}
  ],
  "cta_options": ["CTA1", "CTA2", "CTA3", "CTA4"],
  "summary": "Brief content summary",
  "keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"],
  "social_media_posts": {
    "twitter": "Tweet-length version",
    "linkedin": "Professional LinkedIn post",
    "facebook": "Engaging Facebook post"
  }
}

Ensure all content is optimized for the specified target audience and tone.`,
		content, targets.Audience, targets.Tone, targets.Goal)
}

func buildEntitiesPrompt(text string) string {
	return fmt.Sprintf(`Extract the named entities from the following text.

Respond with a JSON array only. Each element has this structure:
{"text": "entity surface text", "category": "PERSON|ORG|GPE|PRODUCT|EVENT|DATE|OTHER"}

List entities in the order they first appear. Do not repeat an identical
text/category pair.

Text:
%s`, text)
}
