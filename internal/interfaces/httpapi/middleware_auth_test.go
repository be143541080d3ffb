package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireInternalJobToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		provided string
		want     int
	}{
		{name: "not configured", token: "", provided: "anything", want: http.StatusServiceUnavailable},
		{name: "missing header", token: "secret", provided: "", want: http.StatusUnauthorized},
		{name: "wrong token", token: "secret", provided: "secreT", want: http.StatusUnauthorized},
		{name: "valid token", token: "secret", provided: " secret ", want: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
			})
			handler := RequireInternalJobToken(tt.token, next)

			req := httptest.NewRequest(http.MethodPost, "/v1/internal/recalculate", nil)
			if tt.provided != "" {
				req.Header.Set(internalJobTokenHeader, tt.provided)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}
