package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/spartakiad-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/logging"
	"github.com/riskibarqy/spartakiad-scoring/internal/usecase"
)

const testJobToken = "job-token"

type failingHealth struct{}

func (failingHealth) Ping(context.Context) error { return errors.New("connection refused") }

func newTestRouter(t *testing.T, health HealthChecker) http.Handler {
	t.Helper()

	st := memory.NewStore()
	logger := logging.NewNop()
	recalc := usecase.NewRecalculationService(st, nil, logger, usecase.RecalculationConfig{Workers: 2})
	handler := NewHandler(
		usecase.NewCatalogService(st, st.SportTypes(), st.Faculties(), st.Competitions(), st.Teams()),
		usecase.NewPerformanceService(st.Performances(), recalc),
		usecase.NewStandingsService(st.SportTypes(), st.Faculties(), st.Performances(), st.Standings()),
		recalc,
		usecase.NewAdminService(recalc, usecase.DefaultSeedDataset(), nil, logger),
		health,
		logger,
	)
	if health == nil {
		handler.health = st
	}
	return NewRouter(handler, logger, true, []string{"*"}, testJobToken)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if strings.HasPrefix(path, "/v1/internal/") {
		req.Header.Set(internalJobTokenHeader, testJobToken)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return envelope.Data
}

func seedRouter(t *testing.T) http.Handler {
	t.Helper()
	router := newTestRouter(t, nil)
	rec := doRequest(t, router, http.MethodPost, "/v1/internal/reset", "")
	expectStatus(t, rec, http.StatusOK)
	return router
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, nil), http.MethodGet, "/healthz", "")
	expectStatus(t, rec, http.StatusOK)

	rec = doRequest(t, newTestRouter(t, failingHealth{}), http.MethodGet, "/healthz", "")
	expectStatus(t, rec, http.StatusServiceUnavailable)
}

func TestInternalRoutes_RequireToken(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/reset", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	expectStatus(t, rec, http.StatusUnauthorized)

	rec = doRequest(t, router, http.MethodGet, "/v1/faculties", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeData[[]facultyDTO](t, rec); len(got) != 0 {
		t.Fatalf("reset without token must not seed, got %d faculties", len(got))
	}
}

func TestResetAndSeed_ReportsCounts(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/reset", "")
	expectStatus(t, rec, http.StatusOK)

	report := decodeData[seedReportDTO](t, rec)
	if report.Counts.Faculties != 5 || report.Counts.SportTypes != 8 || report.Counts.Performances != 320 {
		t.Fatalf("unexpected seed counts: %+v", report.Counts)
	}
	if report.Recalculation.FailedCount != 0 || report.Recalculation.SportCount != 8 {
		t.Fatalf("unexpected recalculation report: %+v", report.Recalculation)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/standings/overall", "")
	expectStatus(t, rec, http.StatusOK)
	overall := decodeData[[]facultyStandingDTO](t, rec)
	if len(overall) != 5 {
		t.Fatalf("expected 5 overall rows, got %d", len(overall))
	}
	if overall[0].Place != 1 || overall[0].TotalPoints < overall[4].TotalPoints {
		t.Fatalf("overall rating is not ordered by place: %+v", overall)
	}
}

func TestPerformanceLifecycle_RecalculatesPoints(t *testing.T) {
	router := seedRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/sport-types", `{"name":"Прыжки в длину","category":"INDIVIDUAL_SCORE"}`)
	expectStatus(t, rec, http.StatusCreated)
	sportType := decodeData[sportTypeDTO](t, rec)
	if sportType.Category != "INDIVIDUAL_SCORE" {
		t.Fatalf("unexpected category %q", sportType.Category)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/competitions",
		fmt.Sprintf(`{"name":"Прыжки","sport_type_id":%d,"date":"2026-04-01","location":"Стадион"}`, sportType.ID))
	expectStatus(t, rec, http.StatusCreated)
	comp := decodeData[competitionDTO](t, rec)
	if comp.Date != "2026-04-01" {
		t.Fatalf("unexpected competition date %q", comp.Date)
	}

	// Students 1 and 9 are men of the first and second faculty.
	create := func(studentID int64, result string) performanceDTO {
		t.Helper()
		rec := doRequest(t, router, http.MethodPost, "/v1/performances", fmt.Sprintf(
			`{"student_id":%d,"sport_type_id":%d,"competition_id":%d,"original_result":%s}`,
			studentID, sportType.ID, comp.ID, result))
		expectStatus(t, rec, http.StatusCreated)
		return decodeData[performanceDTO](t, rec)
	}
	get := func(id int64) performanceDTO {
		t.Helper()
		rec := doRequest(t, router, http.MethodGet, fmt.Sprintf("/v1/performances/%d", id), "")
		expectStatus(t, rec, http.StatusOK)
		return decodeData[performanceDTO](t, rec)
	}

	first := create(1, "5.2")
	if first.Points != 10 {
		t.Fatalf("a lone performance must score 10, got %d", first.Points)
	}
	second := create(9, "6.1")
	if second.Points != 10 {
		t.Fatalf("the better result must score 10, got %d", second.Points)
	}
	if got := get(first.ID).Points; got != 9 {
		t.Fatalf("the overtaken performance must drop to 9, got %d", got)
	}

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/v1/sport-types/%d/standings", sportType.ID), "")
	expectStatus(t, rec, http.StatusOK)
	rows := decodeData[[]facultyStandingDTO](t, rec)
	if len(rows) != 5 {
		t.Fatalf("expected a row per faculty, got %d", len(rows))
	}
	if rows[0].FacultyID != 2 || rows[0].TotalPoints != 10 || rows[0].Place != 1 {
		t.Fatalf("unexpected leader %+v", rows[0])
	}
	if rows[1].FacultyID != 1 || rows[1].TotalPoints != 9 || rows[1].Place != 2 {
		t.Fatalf("unexpected runner-up %+v", rows[1])
	}

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/v1/sport-types/%d/results?gender=MALE", sportType.ID), "")
	expectStatus(t, rec, http.StatusOK)
	results := decodeData[[]rankedPerformanceDTO](t, rec)
	if len(results) != 2 || results[0].PerformanceID != second.ID || results[0].Place != 1 || results[1].Place != 2 {
		t.Fatalf("unexpected results protocol: %+v", results)
	}

	rec = doRequest(t, router, http.MethodPut, fmt.Sprintf("/v1/performances/%d", first.ID), `{"original_result":7.0}`)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeData[performanceDTO](t, rec).Points; got != 10 {
		t.Fatalf("updated performance must lead with 10, got %d", got)
	}
	if got := get(second.ID).Points; got != 9 {
		t.Fatalf("overtaken performance must drop to 9, got %d", got)
	}

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/v1/performances/%d", first.ID), "")
	expectStatus(t, rec, http.StatusOK)
	if got := get(second.ID).Points; got != 10 {
		t.Fatalf("remaining performance must score 10 after delete, got %d", got)
	}

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/v1/performances/%d", first.ID), "")
	expectStatus(t, rec, http.StatusNotFound)
}

func TestCreatePerformance_Rejections(t *testing.T) {
	router := seedRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "duplicate", body: `{"student_id":1,"sport_type_id":1,"competition_id":1,"time_result":"0:00:12.00"}`, want: http.StatusConflict},
		{name: "unknown competition", body: `{"student_id":1,"sport_type_id":1,"competition_id":999,"time_result":"0:00:12.00"}`, want: http.StatusNotFound},
		{name: "missing student", body: `{"sport_type_id":1,"competition_id":1}`, want: http.StatusBadRequest},
		{name: "unknown field", body: `{"student_id":1,"sport_type_id":1,"competition_id":1,"points":10}`, want: http.StatusBadRequest},
		{name: "malformed json", body: `{"student_id":`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/v1/performances", tt.body)
			expectStatus(t, rec, tt.want)
		})
	}
}

func TestReadRoutes_RejectBadParameters(t *testing.T) {
	router := seedRouter(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "non numeric sport", path: "/v1/sport-types/abc/results", want: http.StatusBadRequest},
		{name: "zero sport", path: "/v1/sport-types/0/standings", want: http.StatusBadRequest},
		{name: "unknown gender", path: "/v1/sport-types/1/results?gender=X", want: http.StatusBadRequest},
		{name: "unknown sport", path: "/v1/sport-types/404/standings", want: http.StatusNotFound},
		{name: "cyrillic gender", path: "/v1/standings/overall?gender=%D0%96", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.path, "")
			expectStatus(t, rec, tt.want)
		})
	}
}

func TestCatalogRoutes(t *testing.T) {
	router := seedRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/sport-types", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeData[[]sportTypeDTO](t, rec); len(got) != 8 || got[3].Category != "TEAM_SCORE" {
		t.Fatalf("unexpected sport types: %+v", got)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/sport-types/4/teams", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeData[[]teamDTO](t, rec); len(got) != 5 || len(got[0].StudentIDs) != 8 {
		t.Fatalf("unexpected teams: %+v", got)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/teams", `{"sport_type_id":1,"faculty_id":1,"student_ids":[1,2]}`)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = doRequest(t, router, http.MethodPost, "/v1/competitions", `{"name":"Финал","sport_type_id":1,"date":"14.05.2026"}`)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = doRequest(t, router, http.MethodGet, "/v1/sport-types/1/competitions", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeData[[]competitionDTO](t, rec); len(got) != 1 {
		t.Fatalf("expected the seeded competition only, got %+v", got)
	}
}

func TestRecalculateRoutes(t *testing.T) {
	router := seedRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/recalculate", "")
	expectStatus(t, rec, http.StatusOK)
	report := decodeData[recalculationReportDTO](t, rec)
	if report.RunID == "" || report.SportCount != 8 || report.SuccessCount != 8 || len(report.Totals) != 5 {
		t.Fatalf("unexpected recalculation report: %+v", report)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/recalculate/3", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeData[sportRecalculationDTO](t, rec); got.SportTypeID != 3 || got.Performances != 40 {
		t.Fatalf("unexpected sport recalculation: %+v", got)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/recalculate/99", "")
	expectStatus(t, rec, http.StatusNotFound)
}

func TestSwaggerRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/openapi.yaml", "")
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "/v1/standings/overall") {
		t.Fatalf("openapi document does not describe the overall standing route")
	}

	rec = doRequest(t, router, http.MethodGet, "/docs", "")
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "Spartakiad Scoring API Docs") {
		t.Fatalf("unexpected swagger page")
	}
}
