package handler

import (
	"strings"

	"dossier/internal/extraction"
	"dossier/internal/phase"
	dErrors "dossier/pkg/domain-errors"
)

// CreateProcessRequest is the HTTP request body for POST /processes.
type CreateProcessRequest struct {
	ClientName string `json:"client_name"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CreateProcessRequest) Validate() error {
	r.ClientName = strings.TrimSpace(r.ClientName)
	if r.ClientName == "" {
		return dErrors.New(dErrors.CodeValidation, "client_name is required")
	}
	if len(r.ClientName) > 256 {
		return dErrors.New(dErrors.CodeValidation, "client_name must be at most 256 characters")
	}
	return nil
}

// ChangeStatusRequest is the HTTP request body for POST /processes/{id}/status.
type ChangeStatusRequest struct {
	Phase string `json:"phase"`

	parsedPhase phase.ID
}

// Validate validates and parses the request. Deprecated alias spellings are
// accepted; the service resolves them to canonical ids.
func (r *ChangeStatusRequest) Validate() error {
	r.Phase = strings.TrimSpace(r.Phase)
	if r.Phase == "" {
		return dErrors.New(dErrors.CodeValidation, "phase is required")
	}
	if len(r.Phase) > 64 {
		return dErrors.New(dErrors.CodeValidation, "phase must be at most 64 characters")
	}
	r.parsedPhase = phase.ID(r.Phase)
	return nil
}

// ParsedPhase returns the validated phase id.
func (r *ChangeStatusRequest) ParsedPhase() phase.ID {
	return r.parsedPhase
}

// AnalyzeDocumentRequest is the HTTP request body for
// POST /processes/{id}/documents/analyze.
type AnalyzeDocumentRequest struct {
	DocumentURL  string `json:"document_url"`
	DocumentType string `json:"document_type"`

	parsedType extraction.DocumentType
}

// Validate validates and parses the request. Unknown document types are not
// rejected; they route through the fallback mapping.
func (r *AnalyzeDocumentRequest) Validate() error {
	r.DocumentURL = strings.TrimSpace(r.DocumentURL)
	if r.DocumentURL == "" {
		return dErrors.New(dErrors.CodeValidation, "document_url is required")
	}
	if len(r.DocumentURL) > 2048 {
		return dErrors.New(dErrors.CodeValidation, "document_url must be at most 2048 characters")
	}
	r.DocumentType = strings.TrimSpace(r.DocumentType)
	r.parsedType = extraction.ParseDocumentType(r.DocumentType)
	return nil
}

// ParsedDocumentType returns the validated document type.
func (r *AnalyzeDocumentRequest) ParsedDocumentType() extraction.DocumentType {
	return r.parsedType
}
