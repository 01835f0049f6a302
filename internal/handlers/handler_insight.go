package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
	"github.com/retailpulse/bi_backend/internal/dto"
	"github.com/retailpulse/bi_backend/internal/middleware"
	"github.com/retailpulse/bi_backend/internal/sqlguard"
)

// insightHandler handles the NL-to-SQL query endpoint.
type insightHandler struct {
	insightService portssvc.InsightSvcFacade
}

// newInsightHandler creates a new insightHandler.
func newInsightHandler(is portssvc.InsightSvcFacade) *insightHandler {
	return &insightHandler{
		insightService: is,
	}
}

// RegisterInsightRoutes registers the query route behind the given
// middleware (rate limiting).
func RegisterInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvcFacade, mw ...gin.HandlerFunc) {
	h := newInsightHandler(insightService)
	rg.POST("/query", append(mw, h.answerQuestion)...)
}

// answerQuestion godoc
// @Summary Answer a free-text business question with a guarded SQL query
// @Description Generates a SELECT over the fact tables, validates it against the allow-list, executes it and shapes the result
// @Tags query
// @Accept json
// @Produce json
// @Param request body dto.InsightRequest true "Business question"
// @Success 200 {object} dto.InsightResponse
// @Failure 400 {object} map[string]string "Missing question or rejected SQL"
// @Failure 500 {object} map[string]string "Generation or execution failure"
// @Router /query [post]
func (h *insightHandler) answerQuestion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind query request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing question in body"})
		return
	}

	logger.Info("Received business question", slog.String("question", req.Question))

	result, err := h.insightService.Answer(c.Request.Context(), req.Question)
	if err != nil {
		var rejection *sqlguard.RejectionError
		var apiErr *openai.APIError
		switch {
		case errors.As(err, &rejection):
			logger.Warn("Generated SQL rejected", slog.String("reason", rejection.Reason), slog.String("sql", rejection.SQL))
			c.JSON(http.StatusBadRequest, gin.H{"error": rejection.Reason, "sql": rejection.SQL})
		case errors.As(err, &apiErr):
			status := apiErr.HTTPStatusCode
			if status == 0 {
				status = http.StatusInternalServerError
			}
			logger.Error("Completion provider error", slog.Int("status", status), slog.String("error", apiErr.Message))
			c.JSON(status, gin.H{"error": apiErr.Message})
		default:
			logger.Error("Failed to answer question", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Question answered", slog.String("sql", result.SQL))
	c.JSON(http.StatusOK, dto.ToInsightResponse(result))
}
