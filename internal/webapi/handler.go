package webapi

import (
	"errors"
	"fmt"
	"net/http"

	"postwright/internal/corpus"
	"postwright/internal/generator"
	"postwright/internal/logging"

	"github.com/gin-gonic/gin"
)

// Handler exposes the generation pipeline and corpus stats over HTTP.
// Recorder is optional; when set, completed generations are logged
// best-effort.
type Handler struct {
	Pipeline *generator.Pipeline
	Engine   corpus.Engine
	Recorder corpus.Recorder
	Logger   logging.Logger
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	api.POST("/generate", h.Generate)
	api.GET("/corpus/stats", h.CorpusStats)
}

type GenerateRequest struct {
	Topic     string `json:"topic"`
	Tone      string `json:"tone,omitempty"`
	Intensity string `json:"intensity,omitempty"`
	Category  string `json:"category,omitempty"`
}

type GenerateMetadata struct {
	Topic          string   `json:"topic"`
	Tone           string   `json:"tone"`
	Intensity      string   `json:"intensity"`
	Category       string   `json:"category"`
	ReferencePosts int      `json:"referencePosts"`
	AvgSimilarity  string   `json:"avgSimilarity"`
	UsedFallback   bool     `json:"usedFallback"`
	CommonHooks    []string `json:"commonHooks,omitempty"`
	AvgLength      int      `json:"avgLength,omitempty"`
	AvgEngagement  string   `json:"avgEngagement,omitempty"`
}

type GenerateResponse struct {
	Success  bool             `json:"success"`
	Post     string           `json:"post"`
	Metadata GenerateMetadata `json:"metadata"`
}

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tone, err := generator.ParseTone(req.Tone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	intensity, err := generator.ParseIntensity(req.Intensity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genReq := generator.GenerationRequest{
		Topic:     req.Topic,
		Tone:      tone,
		Intensity: intensity,
		Category:  req.Category,
	}
	result, err := h.Pipeline.GeneratePost(c.Request.Context(), genReq)
	if err != nil {
		h.writeGenerateError(c, err)
		return
	}

	if h.Recorder != nil {
		record := corpus.GenerationRecord{
			Topic:         req.Topic,
			Tone:          string(genReq.EffectiveTone()),
			Category:      req.Category,
			Content:       result.Content,
			ReferenceIDs:  result.ReferenceIDs,
			AvgSimilarity: result.AvgSimilarity,
		}
		if recordErr := h.Recorder.RecordGeneration(c.Request.Context(), record); recordErr != nil {
			h.Logger.WithError(recordErr).Warn("Failed to record generation")
		}
	}

	metadata := GenerateMetadata{
		Topic:          req.Topic,
		Tone:           string(genReq.EffectiveTone()),
		Intensity:      string(intensity),
		Category:       req.Category,
		ReferencePosts: result.ReferenceCount,
		AvgSimilarity:  fmt.Sprintf("%.2f", result.AvgSimilarity),
		UsedFallback:   result.UsedFallback,
	}
	if result.Patterns != nil {
		metadata.CommonHooks = result.Patterns.CommonHooks
		metadata.AvgLength = result.Patterns.AvgLength
		metadata.AvgEngagement = fmt.Sprintf("%.1f", result.Patterns.AvgEngagement)
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Success:  true,
		Post:     result.Content,
		Metadata: metadata,
	})
}

func (h *Handler) writeGenerateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, generator.ErrEmptyTopic):
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
	case errors.Is(err, corpus.ErrEmptyCorpus):
		h.Logger.WithError(err).Error("Reference corpus is empty")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reference corpus is empty"})
	default:
		h.Logger.WithError(err).Error("Post generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate post"})
	}
}

func (h *Handler) CorpusStats(c *gin.Context) {
	stats, err := h.Engine.Stats(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("Failed to load corpus stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load corpus stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
