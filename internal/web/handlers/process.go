package handlers

import (
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kozaktomas/face-filters/internal/assets"
	"github.com/kozaktomas/face-filters/internal/filter"
	"github.com/kozaktomas/face-filters/internal/landmark"
)

// ProcessHandler composites the requested filters onto an uploaded image.
type ProcessHandler struct {
	detector landmark.Detector
	library  *assets.Library
	params   filter.Params
}

// NewProcessHandler creates a new process handler.
func NewProcessHandler(detector landmark.Detector, library *assets.Library, params filter.Params) *ProcessHandler {
	return &ProcessHandler{
		detector: detector,
		library:  library,
		params:   params,
	}
}

// Process handles a single composite request. The multipart form carries the
// frame under "image", a comma-separated filter list under "filters", an
// optional replacement image under "background" and an optional "mirror"
// boolean. The response body is the composited frame encoded as PNG.
func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	frame, err := assets.Decode(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unsupported image format")
		return
	}

	state, err := parseFilterState(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	mirror := false
	if v := r.FormValue("mirror"); v != "" {
		mirror, err = strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "mirror must be a boolean")
			return
		}
	}

	pipeline := filter.NewPipeline(h.detector, state, h.library.Sunglasses, h.library.RabbitEars, h.params)
	pipeline.SetMirror(mirror)

	out, err := pipeline.Process(r.Context(), frame)
	if err != nil {
		log.Printf("processing image failed: %v", sanitizeForLog(err.Error()))
		respondError(w, http.StatusBadGateway, "processing image failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Result-Id", uuid.NewString())
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, out); err != nil {
		log.Printf("encoding response image failed: %v", err)
	}
}

// parseFilterState builds the per-request filter state from form values. The
// background image is required when the background filter is requested.
func parseFilterState(r *http.Request) (*filter.State, error) {
	state := filter.NewState()

	raw := r.FormValue("filters")
	if raw == "" {
		return state, nil
	}

	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		kind, err := filter.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("unknown filter %q", name)
		}
		state.Enable(kind, true)
	}

	if state.Enabled(filter.Background) {
		file, _, err := r.FormFile("background")
		if err != nil {
			return nil, fmt.Errorf("background filter requires a background file")
		}
		defer file.Close()

		bg, err := assets.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("unsupported background image format")
		}
		state.SetBackground(bg)
	}

	return state, nil
}
