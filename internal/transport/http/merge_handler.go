package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apperrors "mergexml/internal/errors"
	"mergexml/internal/merge"
)

// MergeService is the capability the merge handler needs
type MergeService interface {
	Merge(ctx context.Context, source string) (*merge.Result, error)
}

// MergeHandler handles merge-related HTTP requests
type MergeHandler struct {
	service MergeService
	logger  *slog.Logger
}

// NewMergeHandler creates a new merge handler
func NewMergeHandler(service MergeService, logger *slog.Logger) *MergeHandler {
	return &MergeHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "merge")),
	}
}

// MergeRequest is the body of POST /api/merge. Source is optional; when
// empty the configured source directory is used.
type MergeRequest struct {
	Source string `json:"source"`
}

// MergeResponse is the success body of POST /api/merge
type MergeResponse struct {
	Success bool          `json:"success"`
	Result  *merge.Result `json:"result"`
}

// Merge handles POST /api/merge
func (h *MergeHandler) Merge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MergeRequest
	if r.ContentLength != 0 {
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			h.logger.WarnContext(ctx, "Invalid merge request body",
				slog.String("error", err.Error()))
			render.Render(w, r, apperrors.NewErrorResponse(
				apperrors.NewWithDetails(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format", err.Error())))
			return
		}
	}

	result, err := h.service.Merge(ctx, req.Source)
	if err != nil {
		apiErr := apperrors.FromDomain(err)
		h.logger.ErrorContext(ctx, "Merge failed",
			slog.String("source", req.Source),
			slog.String("error_code", apiErr.ErrorCode),
			slog.String("error", err.Error()))
		render.Render(w, r, apperrors.NewErrorResponse(apiErr))
		return
	}

	h.logger.InfoContext(ctx, "Merge succeeded",
		slog.String("target", result.TargetFile),
		slog.Int("files_merged", result.FilesMerged))
	render.JSON(w, r, MergeResponse{Success: true, Result: result})
}
