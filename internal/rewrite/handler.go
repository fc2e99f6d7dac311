package rewrite

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-optimizer/internal/llm"
	"content-optimizer/internal/optimize"
	"content-optimizer/internal/shared/server/respond"
)

// Handler wires the rewrite route to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the rewrite route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rewrite", h.rewrite)
}

// RewriteRequest is the JSON body of POST /rewrite.
type RewriteRequest struct {
	Content           string `json:"content"`
	TargetAudience    string `json:"target_audience"`
	TargetReadability int    `json:"target_readability"`
	TargetTone        string `json:"target_tone"`
	OptimizationGoal  string `json:"optimization_goal"`
}

// RewriteResponse is the JSON body of a successful rewrite.
type RewriteResponse struct {
	Success   bool            `json:"success"`
	Rewritten string          `json:"rewritten"`
	Assets    llm.AssetBundle `json:"assets"`
}

func (h *Handler) rewrite(c *gin.Context) {
	var req RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, optimize.ErrorCodeValidation, "invalid JSON body")
		return
	}
	if req.Content == "" {
		respond.Error(c, http.StatusBadRequest, optimize.ErrorCodeEmptyContent, "Content is required")
		return
	}

	out, err := h.Svc.Rewrite(c.Request.Context(), req.Content, optimize.TargetParameters{
		TargetAudience:    req.TargetAudience,
		TargetReadability: req.TargetReadability,
		TargetTone:        req.TargetTone,
		OptimizationGoal:  req.OptimizationGoal,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDisabled):
			respond.Error(c, http.StatusBadGateway, ErrorCodeUnavailable, "rewrite is not available: no AI provider is configured")
		case errors.Is(err, optimize.ErrEmptyContent):
			respond.Error(c, http.StatusBadRequest, optimize.ErrorCodeEmptyContent, "Content cannot be empty")
		case errors.Is(err, optimize.ErrInvalidTargetParameter):
			respond.Error(c, http.StatusBadRequest, optimize.ErrorCodeValidation, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, optimize.ErrorCodeInternal, "An error occurred while rewriting your content")
		}
		return
	}

	respond.OK(c, RewriteResponse{
		Success:   true,
		Rewritten: out.Rewritten,
		Assets:    out.Assets,
	})
}
