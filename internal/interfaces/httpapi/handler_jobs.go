package httpapi

import "net/http"

func (h *Handler) RunRecalculateAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculateAll")
	defer span.End()

	report, err := h.recalcService.RecalculateAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculate all failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recalculationReportToDTO(report))
}

func (h *Handler) RunRecalculateSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculateSport")
	defer span.End()

	sportTypeID, err := pathID(r, "sportTypeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.recalcService.RecalculateSport(ctx, sportTypeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculate sport failed", "sport_type_id", sportTypeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportRecalculationToDTO(row))
}

// RunResetAndSeed wipes the store and reloads the built-in dataset.
func (h *Handler) RunResetAndSeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunResetAndSeed")
	defer span.End()

	report, err := h.adminService.ResetAndSeed(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reset and seed failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seedReportToDTO(report))
}
