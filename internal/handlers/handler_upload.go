package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/retailpulse/bi_backend/internal/apperrors"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
	"github.com/retailpulse/bi_backend/internal/dto"
	"github.com/retailpulse/bi_backend/internal/middleware"
)

// uploadHandler handles report spreadsheet upload batches.
type uploadHandler struct {
	ingestionService portssvc.IngestionSvcFacade
}

// newUploadHandler creates a new uploadHandler.
func newUploadHandler(is portssvc.IngestionSvcFacade) *uploadHandler {
	return &uploadHandler{
		ingestionService: is,
	}
}

// RegisterUploadRoutes registers the upload route.
func RegisterUploadRoutes(rg *gin.RouterGroup, ingestionService portssvc.IngestionSvcFacade) {
	h := newUploadHandler(ingestionService)
	rg.POST("/upload", h.uploadReports)
}

// uploadReports godoc
// @Summary Ingest a batch of monthly report spreadsheets
// @Description Accepts multipart files plus the reporting period; recognized report files are parsed and bulk-inserted
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param month formData int true "Reporting month (1-12)"
// @Param year formData int true "Reporting year"
// @Param files formData file true "Report spreadsheets"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} map[string]string "Missing or malformed month/year"
// @Failure 500 {object} map[string]string "Failed to ingest batch"
// @Router /upload [post]
func (h *uploadHandler) uploadReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month, err := strconv.Atoi(c.PostForm("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required and must be an integer"})
		return
	}
	year, err := strconv.Atoi(c.PostForm("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required and must be an integer"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form: " + err.Error()})
		return
	}

	var files []portssvc.UploadedFile
	for _, fh := range form.File["files"] {
		src, err := fh.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", slog.String("filename", fh.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file " + fh.Filename})
			return
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			logger.Error("Failed to read uploaded file", slog.String("filename", fh.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file " + fh.Filename})
			return
		}
		files = append(files, portssvc.UploadedFile{Filename: fh.Filename, Content: content})
	}

	logger = logger.With(slog.Int("month", month), slog.Int("year", year), slog.Int("files", len(files)))
	logger.Info("Received upload batch")

	total, err := h.ingestionService.IngestBatch(c.Request.Context(), files, month, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Upload batch failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to ingest upload batch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Upload batch ingested", slog.Int64("rows_inserted", total))
	c.JSON(http.StatusOK, dto.UploadResponse{RowsInserted: total})
}
