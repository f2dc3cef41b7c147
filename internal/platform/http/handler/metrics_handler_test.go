package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetrics(t *testing.T) {
	router := newPlatformRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var points []MetricPoint
	if err := json.Unmarshal(w.Body.Bytes(), &points); err != nil {
		t.Fatalf("failed to unmarshal body: %v", err)
	}

	if len(points) != 12 {
		t.Fatalf("expected 12 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Time != fmt.Sprintf("%d:00", i) {
			t.Errorf("point %d: expected time %q, got %q", i, fmt.Sprintf("%d:00", i), p.Time)
		}
		if p.Value < 20 || p.Value > 100 {
			t.Errorf("point %d: value %v out of range", i, p.Value)
		}
	}
}
