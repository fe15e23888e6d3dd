package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dossier/internal/extraction"
	"dossier/internal/phase"
	"dossier/internal/process/models"
	"dossier/internal/process/service"
	id "dossier/pkg/domain"
	"dossier/pkg/platform/httputil"
	"dossier/pkg/requestcontext"
)

// Service defines the interface for process operations.
type Service interface {
	CreateProcess(ctx context.Context, clientName string) (*models.Process, error)
	GetProcess(ctx context.Context, processID id.ProcessID) (*models.Process, error)
	ChangeStatus(ctx context.Context, processID id.ProcessID, target phase.ID) (*models.Process, error)
	AnalyzeDocument(ctx context.Context, processID id.ProcessID, documentURL string, hint extraction.DocumentType) (*models.Process, error)
	RetryPendingPatch(ctx context.Context, processID id.ProcessID) (*models.Process, error)
	Timeline(ctx context.Context, processID id.ProcessID) (*service.TimelineView, error)
}

// Handler wires process endpoints to the process service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a process handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts process endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/processes", h.HandleCreate)
	r.Get("/processes/{processID}", h.HandleGet)
	r.Get("/processes/{processID}/timeline", h.HandleTimeline)
	r.Post("/processes/{processID}/status", h.HandleChangeStatus)
	r.Post("/processes/{processID}/documents/analyze", h.HandleAnalyzeDocument)
	r.Post("/processes/{processID}/patches/retry", h.HandleRetryPatch)
}

// HandleCreate handles POST /processes.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateProcessRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	process, err := h.service.CreateProcess(ctx, req.ClientName)
	if err != nil {
		h.logger.ErrorContext(ctx, "process creation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "process created",
		"request_id", requestID,
		"process_id", process.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromProcess(process))
}

// HandleGet handles GET /processes/{processID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	processID, err := id.ParseProcessID(chi.URLParam(r, "processID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	process, err := h.service.GetProcess(ctx, processID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromProcess(process))
}

// HandleTimeline handles GET /processes/{processID}/timeline.
func (h *Handler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	processID, err := id.ParseProcessID(chi.URLParam(r, "processID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	view, err := h.service.Timeline(ctx, processID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromTimelineView(view))
}

// HandleChangeStatus handles POST /processes/{processID}/status.
func (h *Handler) HandleChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	processID, err := id.ParseProcessID(chi.URLParam(r, "processID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[ChangeStatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	process, err := h.service.ChangeStatus(ctx, processID, req.ParsedPhase())
	if err != nil {
		h.logger.ErrorContext(ctx, "status change failed",
			"request_id", requestID,
			"process_id", processID,
			"phase", req.Phase,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "status changed",
		"request_id", requestID,
		"process_id", processID,
		"phase", process.Status,
	)
	httputil.WriteJSON(w, http.StatusOK, FromProcess(process))
}

// HandleAnalyzeDocument handles POST /processes/{processID}/documents/analyze.
func (h *Handler) HandleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	processID, err := id.ParseProcessID(chi.URLParam(r, "processID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[AnalyzeDocumentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	process, err := h.service.AnalyzeDocument(ctx, processID, req.DocumentURL, req.ParsedDocumentType())
	if err != nil {
		h.logger.ErrorContext(ctx, "document analysis failed",
			"request_id", requestID,
			"process_id", processID,
			"document_type", req.DocumentType,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "document analyzed and merged",
		"request_id", requestID,
		"process_id", processID,
		"document_type", req.DocumentType,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromProcess(process))
}

// HandleRetryPatch handles POST /processes/{processID}/patches/retry.
func (h *Handler) HandleRetryPatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	processID, err := id.ParseProcessID(chi.URLParam(r, "processID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	process, err := h.service.RetryPendingPatch(ctx, processID)
	if err != nil {
		h.logger.ErrorContext(ctx, "pending patch retry failed",
			"request_id", requestID,
			"process_id", processID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "pending patch applied",
		"request_id", requestID,
		"process_id", processID,
	)
	httputil.WriteJSON(w, http.StatusOK, FromProcess(process))
}
