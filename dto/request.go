package dto

import "strings"

// ExtractRequest represents the incoming scrub request
type ExtractRequest struct {
	RawText string `json:"rawText" binding:"required"`
}

// Validate performs basic validation on the request
func (r *ExtractRequest) Validate() error {
	if strings.TrimSpace(r.RawText) == "" {
		return ErrEmptyInput
	}
	return nil
}
