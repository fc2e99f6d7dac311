// Package bootstrap builds the application object graph from configuration.
package bootstrap

import (
	"context"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"content-optimizer/internal/config"
	"content-optimizer/internal/llm"
	"content-optimizer/internal/llm/gemini"
	"content-optimizer/internal/optimize"
	"content-optimizer/internal/optimize/textparse"
	"content-optimizer/internal/rewrite"
	"content-optimizer/internal/server"
	"content-optimizer/internal/services/health"
	"content-optimizer/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	LLM             llm.Client
	OptimizeService *optimize.Service
	RewriteService  *rewrite.Service

	closer io.Closer
}

// Build prepares the dependency graph and the router. A missing Gemini key
// leaves analysis fully working; rewrite answers 502 and entity extraction
// yields empty lists.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	var (
		client  llm.Client = llm.Disabled{}
		closer  io.Closer
		enabled bool
	)
	if strings.TrimSpace(cfg.GeminiAPIKey) != "" {
		geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		client = geminiClient
		closer = geminiClient
		enabled = true
	} else {
		telemetry.Warn("llm.disabled", map[string]any{
			"reason": "GEMINI_API_KEY not set",
		})
	}

	parser := &textparse.Parser{Entities: entityAdapter{client: client}}
	optimizeSvc := optimize.NewService(parser)
	rewriteSvc := rewrite.NewService(optimizeSvc, client, enabled)

	app := &App{
		Config:          cfg,
		LLM:             client,
		OptimizeService: optimizeSvc,
		RewriteService:  rewriteSvc,
		closer:          closer,
	}

	app.Router = server.NewRouter(cfg, server.Deps{
		Optimize: optimize.NewHandler(optimizeSvc),
		Rewrite:  rewrite.NewHandler(rewriteSvc),
		Health:   health.NewService(config.Version),
	})

	return app, nil
}

// Close releases provider connections.
func (a *App) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// entityAdapter bridges the llm client into the parser's extractor port.
type entityAdapter struct {
	client llm.Client
}

func (a entityAdapter) ExtractEntities(ctx context.Context, text string) ([]textparse.Entity, error) {
	raw, err := a.client.ExtractEntities(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]textparse.Entity, 0, len(raw))
	for _, e := range raw {
		out = append(out, textparse.Entity{Text: e.Text, Category: e.Category})
	}
	return out, nil
}
