package httpapi

import (
	"net/http"

	"github.com/riskibarqy/spartakiad-scoring/internal/usecase"
)

func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPerformance")
	defer span.End()

	performanceID, err := pathID(r, "performanceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.performanceService.Get(ctx, performanceID)
	if err != nil {
		h.logger.WarnContext(ctx, "get performance failed", "performance_id", performanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, performanceToDTO(item))
}

// CreatePerformance records a raw result. The response carries the points
// assigned by the recalculation that ran before it returned.
func (h *Handler) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePerformance")
	defer span.End()

	var req createPerformanceRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.performanceService.Create(ctx, usecase.CreatePerformanceInput{
		StudentID:      req.StudentID,
		SportTypeID:    req.SportTypeID,
		CompetitionID:  req.CompetitionID,
		JudgeID:        req.JudgeID,
		TimeResult:     req.TimeResult,
		OriginalResult: req.OriginalResult,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create performance failed",
			"student_id", req.StudentID,
			"competition_id", req.CompetitionID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, performanceToDTO(created))
}

func (h *Handler) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePerformance")
	defer span.End()

	performanceID, err := pathID(r, "performanceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePerformanceRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.performanceService.Update(ctx, usecase.UpdatePerformanceInput{
		PerformanceID:  performanceID,
		JudgeID:        req.JudgeID,
		TimeResult:     req.TimeResult,
		OriginalResult: req.OriginalResult,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update performance failed", "performance_id", performanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, performanceToDTO(updated))
}

func (h *Handler) DeletePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePerformance")
	defer span.End()

	performanceID, err := pathID(r, "performanceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.performanceService.Delete(ctx, performanceID); err != nil {
		h.logger.WarnContext(ctx, "delete performance failed", "performance_id", performanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted_id": performanceID})
}
