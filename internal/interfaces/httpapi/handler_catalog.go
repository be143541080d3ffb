package httpapi

import (
	"net/http"

	"github.com/riskibarqy/spartakiad-scoring/internal/usecase"
)

func (h *Handler) ListFaculties(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFaculties")
	defer span.End()

	items, err := h.catalogService.ListFaculties(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list faculties failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]facultyDTO, 0, len(items))
	for _, item := range items {
		out = append(out, facultyToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListSportTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSportTypes")
	defer span.End()

	items, err := h.catalogService.ListSportTypes(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sport types failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]sportTypeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, sportTypeToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateSportType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSportType")
	defer span.End()

	var req createSportTypeRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateSportType(ctx, usecase.CreateSportTypeInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create sport type failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sportTypeToDTO(created))
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	sportTypeID, err := pathID(r, "sportTypeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.catalogService.ListCompetitions(ctx, sportTypeID)
	if err != nil {
		h.logger.WarnContext(ctx, "list competitions failed", "sport_type_id", sportTypeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]competitionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitionToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCompetition")
	defer span.End()

	var req createCompetitionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateCompetition(ctx, usecase.CreateCompetitionInput{
		Name:        req.Name,
		SportTypeID: req.SportTypeID,
		Date:        date,
		Location:    req.Location,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create competition failed", "sport_type_id", req.SportTypeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, competitionToDTO(created))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	sportTypeID, err := pathID(r, "sportTypeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.catalogService.ListTeams(ctx, sportTypeID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "sport_type_id", sportTypeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateTeam(ctx, usecase.CreateTeamInput{
		SportTypeID: req.SportTypeID,
		FacultyID:   req.FacultyID,
		StudentIDs:  req.StudentIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed",
			"sport_type_id", req.SportTypeID,
			"faculty_id", req.FacultyID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}
