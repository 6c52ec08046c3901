package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/face-filters/internal/filter"
)

func TestFiltersList(t *testing.T) {
	handler := NewFiltersHandler(filter.DefaultParams())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assertStatusCode(t, rec, http.StatusOK)
	assertContentType(t, rec, "application/json")

	var result struct {
		Filters []struct {
			Name             string `json:"name"`
			NeedsBackground  bool   `json:"needs_background"`
			NeedsOverlayFile bool   `json:"needs_overlay_file"`
		} `json:"filters"`
		Tuning filter.Params `json:"tuning"`
	}
	parseJSONResponse(t, rec, &result)

	if len(result.Filters) != len(filter.Kinds) {
		t.Fatalf("got %d filters; want %d", len(result.Filters), len(filter.Kinds))
	}

	byName := make(map[string]struct {
		needsBackground  bool
		needsOverlayFile bool
	})
	for _, f := range result.Filters {
		byName[f.Name] = struct {
			needsBackground  bool
			needsOverlayFile bool
		}{f.NeedsBackground, f.NeedsOverlayFile}
	}

	if got, ok := byName["background"]; !ok || !got.needsBackground {
		t.Error("background filter must advertise that it needs a background image")
	}
	if got, ok := byName["sunglasses"]; !ok || !got.needsOverlayFile {
		t.Error("sunglasses filter must advertise its overlay file")
	}
	if got, ok := byName["blush"]; !ok || got.needsBackground || got.needsOverlayFile {
		t.Error("blush filter needs neither a background nor an overlay file")
	}

	if result.Tuning != filter.DefaultParams() {
		t.Errorf("tuning = %+v; want defaults", result.Tuning)
	}
}
