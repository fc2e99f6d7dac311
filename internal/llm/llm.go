// Package llm abstracts the external generative text service. The core
// treats it as a bounded-time collaborator: rewrite and asset generation are
// recoverable when they fail, entity extraction degrades to an empty list.
package llm

import (
	"context"
	"errors"
)

// TargetParams mirror the caller's optimization targets for prompt building.
type TargetParams struct {
	Audience    string
	Readability int
	Tone        string
	Goal        string
}

// RewriteInput captures everything the rewrite prompt needs.
type RewriteInput struct {
	Content      string
	Improvements []string // high/medium recommendation messages
	Targets      TargetParams
}

// FAQ is one generated question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AssetBundle is the structured marketing asset set generated from content.
type AssetBundle struct {
	Headlines        []string          `json:"headlines"`
	MetaDescription  string            `json:"meta_description"`
	FAQs             []FAQ             `json:"faqs"`
	CTAOptions       []string          `json:"cta_options"`
	Summary          string            `json:"summary"`
	Keywords         []string          `json:"keywords"`
	SocialMediaPosts map[string]string `json:"social_media_posts"`
}

// Entity is a named entity returned by the extraction capability.
type Entity struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Client abstracts generative providers.
type Client interface {
	// Rewrite returns a markdown rewrite of the content addressing the
	// improvements and targets.
	Rewrite(ctx context.Context, input RewriteInput) (string, error)
	// GenerateAssets returns the marketing asset bundle for the content.
	GenerateAssets(ctx context.Context, content string, targets TargetParams) (AssetBundle, error)
	// ExtractEntities returns named entities in first-occurrence order.
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
}

// ErrRewriteService marks rate limits, network failures, and malformed
// responses from the generative service; the analysis path never fails on it.
var ErrRewriteService = errors.New("rewrite service unavailable")

// ErrEntityExtractionUnavailable signals that entity extraction cannot run;
// callers proceed with an empty entity list.
var ErrEntityExtractionUnavailable = errors.New("entity extraction unavailable")

// Disabled is the no-provider client used when no API key is configured.
type Disabled struct{}

// Rewrite always fails with ErrRewriteService.
func (Disabled) Rewrite(ctx context.Context, input RewriteInput) (string, error) {
	return "", ErrRewriteService
}

// GenerateAssets always fails with ErrRewriteService.
func (Disabled) GenerateAssets(ctx context.Context, content string, targets TargetParams) (AssetBundle, error) {
	return AssetBundle{}, ErrRewriteService
}

// ExtractEntities always fails with ErrEntityExtractionUnavailable.
func (Disabled) ExtractEntities(ctx context.Context, text string) ([]Entity, error) {
	return nil, ErrEntityExtractionUnavailable
}
