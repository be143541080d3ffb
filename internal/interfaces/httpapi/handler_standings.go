package httpapi

import "net/http"

// ListSportResults serves the results protocol of a sport type. Reads never
// recompute points.
func (h *Handler) ListSportResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSportResults")
	defer span.End()

	sportTypeID, err := pathID(r, "sportTypeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gender, err := genderQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.standingsService.ListResults(ctx, sportTypeID, gender)
	if err != nil {
		h.logger.WarnContext(ctx, "list sport results failed", "sport_type_id", sportTypeID, "gender", gender, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]rankedPerformanceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, rankedPerformanceToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetSportStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSportStanding")
	defer span.End()

	sportTypeID, err := pathID(r, "sportTypeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gender, err := genderQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.standingsService.SportStanding(ctx, sportTypeID, gender)
	if err != nil {
		h.logger.WarnContext(ctx, "get sport standing failed", "sport_type_id", sportTypeID, "gender", gender, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, facultyStandingsToDTO(items))
}

func (h *Handler) GetOverallStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverallStanding")
	defer span.End()

	gender, err := genderQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.standingsService.Overall(ctx, gender)
	if err != nil {
		h.logger.WarnContext(ctx, "get overall standing failed", "gender", gender, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, facultyStandingsToDTO(items))
}
