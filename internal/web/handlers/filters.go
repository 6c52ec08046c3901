package handlers

import (
	"net/http"

	"github.com/kozaktomas/face-filters/internal/filter"
)

// FiltersHandler lists the available filters and their tuning parameters.
type FiltersHandler struct {
	params filter.Params
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(params filter.Params) *FiltersHandler {
	return &FiltersHandler{params: params}
}

// filterInfo describes one filter in the listing response.
type filterInfo struct {
	Name             string `json:"name"`
	NeedsBackground  bool   `json:"needs_background"`
	NeedsOverlayFile bool   `json:"needs_overlay_file"`
}

// List returns the available filter names and the active tuning values.
func (h *FiltersHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := make([]filterInfo, 0, len(filter.Kinds))
	for _, kind := range filter.Kinds {
		filters = append(filters, filterInfo{
			Name:             kind.String(),
			NeedsBackground:  kind == filter.Background,
			NeedsOverlayFile: kind == filter.Sunglasses || kind == filter.RabbitEars,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"filters": filters,
		"tuning":  h.params,
	})
}
