package optimize

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"content-optimizer/internal/extract"
	"content-optimizer/internal/optimize/recommendations"
	"content-optimizer/internal/shared/server/respond"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", h.optimize)
	rg.POST("/optimize/upload", h.optimizeUpload)
}

// OptimizeRequest is the JSON body of POST /optimize.
type OptimizeRequest struct {
	Content           string `json:"content"`
	TargetAudience    string `json:"target_audience"`
	TargetReadability int    `json:"target_readability"`
	TargetTone        string `json:"target_tone"`
	OptimizationGoal  string `json:"optimization_goal"`
}

// OptimizeResponse is the JSON body of a successful analysis.
type OptimizeResponse struct {
	Success         bool                             `json:"success"`
	Report          Report                           `json:"report"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
}

func (h *Handler) optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body")
		return
	}
	if req.Content == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeEmptyContent, "Content is required")
		return
	}
	h.analyze(c, req.Content, req.targets())
}

func (h *Handler) optimizeUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeValidation, "file exceeds the 10 MiB limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to read upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to read upload")
		return
	}

	content, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusUnsupportedMediaType, ErrorCodeValidation, "unsupported file type; upload PDF, DOCX, or text")
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "could not extract text from the uploaded file")
		return
	}

	req := OptimizeRequest{
		TargetAudience:   c.PostForm("target_audience"),
		TargetTone:       c.PostForm("target_tone"),
		OptimizationGoal: c.PostForm("optimization_goal"),
	}
	if raw := c.PostForm("target_readability"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "target_readability must be an integer")
			return
		}
		req.TargetReadability = parsed
	}
	h.analyze(c, content, req.targets())
}

func (h *Handler) analyze(c *gin.Context, content string, params TargetParameters) {
	result, err := h.Svc.Analyze(c.Request.Context(), content, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent):
			respond.Error(c, http.StatusBadRequest, ErrorCodeEmptyContent, "Content cannot be empty")
		case errors.Is(err, ErrInvalidTargetParameter):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "An error occurred while processing your content")
		}
		return
	}

	respond.OK(c, OptimizeResponse{
		Success:         true,
		Report:          result.Report,
		Recommendations: result.Recommendations,
	})
}

func (r OptimizeRequest) targets() TargetParameters {
	return TargetParameters{
		TargetAudience:    r.TargetAudience,
		TargetReadability: r.TargetReadability,
		TargetTone:        r.TargetTone,
		OptimizationGoal:  r.OptimizationGoal,
	}
}
