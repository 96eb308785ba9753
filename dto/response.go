package dto

import "errors"

// Custom errors
var (
	// ErrNoExtraction means none of CRM ID, first name or last name could be
	// recovered from the paste, so no record is returned at all.
	ErrNoExtraction = errors.New("no usable client data could be extracted")
	ErrEmptyInput   = errors.New("raw text is required")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExtractResponse is the final response structure
type ExtractResponse struct {
	Record      *ExtractedRecord `json:"record"`
	Missing     []string         `json:"missing,omitempty"`
	ProcessedAt string           `json:"processed_at"`
}

// ValidateResponse lists missing required fields and format warnings for a
// record; the operator is warned, saving is never blocked.
type ValidateResponse struct {
	Missing  []string `json:"missing"`
	Warnings []string `json:"warnings"`
}

// PreviewResponse mirrors the Field/Value table the preview pane renders.
type PreviewResponse struct {
	Headers []string      `json:"headers"`
	Rows    []PreviewPair `json:"rows"`
}
