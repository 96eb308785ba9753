package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Ofranc1208/ScrubbingSheet/dto"
	"github.com/Ofranc1208/ScrubbingSheet/service"

	"github.com/gin-gonic/gin"
)

type ScrubHandler struct {
	scrubService *service.ScrubService
	maxPasteSize int
}

func NewScrubHandler(scrubService *service.ScrubService, maxPasteSize int) *ScrubHandler {
	return &ScrubHandler{
		scrubService: scrubService,
		maxPasteSize: maxPasteSize,
	}
}

// Extract handles the POST /scrub/extract endpoint
func (h *ScrubHandler) Extract(c *gin.Context) {
	request, ok := h.bindExtractRequest(c)
	if !ok {
		return
	}

	record, err := h.extractAny(request.RawText)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Could not extract client data", err)
		return
	}

	missing := h.scrubService.ValidateRecord(record)

	log.Printf("Extraction completed for CRM ID %q (%d fields missing)", record.CrmID, len(missing))
	c.JSON(http.StatusOK, dto.ExtractResponse{
		Record:      record,
		Missing:     missing,
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// Validate handles the POST /scrub/validate endpoint; the body is a record,
// the response lists missing required fields and format warnings.
func (h *ScrubHandler) Validate(c *gin.Context) {
	var record dto.ExtractedRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid record body", err)
		return
	}

	missing := h.scrubService.ValidateRecord(&record)
	if missing == nil {
		missing = []string{}
	}
	warnings := h.scrubService.FormatWarnings(&record)
	if warnings == nil {
		warnings = []string{}
	}

	c.JSON(http.StatusOK, dto.ValidateResponse{
		Missing:  missing,
		Warnings: warnings,
	})
}

// Preview handles the POST /scrub/preview endpoint, returning the ordered
// Field/Value rows the preview pane renders.
func (h *ScrubHandler) Preview(c *gin.Context) {
	request, ok := h.bindExtractRequest(c)
	if !ok {
		return
	}

	record, err := h.extractAny(request.RawText)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Could not extract client data", err)
		return
	}

	c.JSON(http.StatusOK, dto.PreviewResponse{
		Headers: []string{"Field", "Value"},
		Rows:    h.scrubService.PreviewPairs(record),
	})
}

func (h *ScrubHandler) bindExtractRequest(c *gin.Context) (*dto.ExtractRequest, bool) {
	var request dto.ExtractRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return nil, false
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return nil, false
	}
	if h.maxPasteSize > 0 && len(request.RawText) > h.maxPasteSize {
		h.sendError(c, http.StatusRequestEntityTooLarge, "Paste exceeds maximum size", nil)
		return nil, false
	}
	return &request, true
}

// extractAny tries the legacy-screen extraction first, then the delimited
// fallback.
func (h *ScrubHandler) extractAny(rawText string) (*dto.ExtractedRecord, error) {
	record, err := h.scrubService.Extract(rawText)
	if errors.Is(err, dto.ErrNoExtraction) {
		return h.scrubService.ExtractDelimited(rawText)
	}
	return record, err
}

// sendError sends a structured error response
func (h *ScrubHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
