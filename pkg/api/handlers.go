package api

import (
	"encoding/json"
	"errors"
	"math"
	"mime"
	"net/http"
	"strconv"

	"laneinfer/pkg/corpus"
	"laneinfer/pkg/diag"
	"laneinfer/pkg/lanes"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/tags"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	corpus *corpus.Corpus
}

// NewHandlers creates handlers backed by the given demo corpus.
func NewHandlers(c *corpus.Corpus) *Handlers {
	return &Handlers{corpus: c}
}

// HandleLanes handles POST /api/v1/lanes.
func (h *Handlers) HandleLanes(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req LanesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}
	if len(req.Tags) == 0 {
		writeError(w, http.StatusBadRequest, "missing_tags", "")
		return
	}

	loc := localeFromJSON(req.Locale)
	cfg := lanes.Config{
		ErrorOnWarnings:   req.Config.ErrorOnWarnings,
		IncludeSeparators: req.Config.IncludeSeparators,
	}

	rd, warnings, err := lanes.TagsToLanes(tags.New(req.Tags), loc, cfg)
	if err != nil {
		writeRoadError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LanesResponse{Road: rd, Warnings: warningsJSON(warnings)})
}

// HandleNearest handles GET /api/v1/lanes/nearest.
func (h *Handlers) HandleNearest(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil || math.IsNaN(lat) || math.IsNaN(lon) {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "")
		return
	}

	way, ok := h.corpus.Nearest(lat, lon)
	if !ok {
		writeError(w, http.StatusNotFound, "corpus_empty", "")
		return
	}

	loc := locale.NewDefault(locale.Right)
	rd, warnings, err := lanes.TagsToLanes(way.Tags, loc, lanes.Config{IncludeSeparators: true})
	if err != nil {
		writeRoadError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NearestLanesResponse{
		WayID:    int64(way.ID),
		Lat:      way.Location[1],
		Lon:      way.Location[0],
		Road:     rd,
		Warnings: warningsJSON(warnings),
	})
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func localeFromJSON(l LocaleJSON) locale.Locale {
	side := locale.Right
	if l.DrivingSide == "left" {
		side = locale.Left
	}
	loc := locale.NewDefault(side)
	if l.InferredSidewalks != nil {
		loc.InferredSidewalks = *l.InferredSidewalks
	}
	return loc
}

func warningsJSON(w *diag.Warnings) []WarningJSON {
	list := w.List()
	out := make([]WarningJSON, len(list))
	for i, m := range list {
		out[i] = WarningJSON{Kind: m.Kind.String(), Description: m.Description, Tags: m.Tags.Map()}
	}
	return out
}

// writeRoadError maps a diag.Error's Kind to an HTTP status, the way
// HandleRoute maps routing sentinel errors via errors.Is.
func writeRoadError(w http.ResponseWriter, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, diag.KindError(diag.Unsupported)):
		status, kind = http.StatusUnprocessableEntity, "unsupported"
	case errors.Is(err, diag.KindError(diag.Ambiguous)):
		status, kind = http.StatusUnprocessableEntity, "ambiguous"
	case errors.Is(err, diag.KindError(diag.Unimplemented)):
		status, kind = http.StatusNotImplemented, "unimplemented"
	}
	writeError(w, status, err.Error(), kind)
}

func writeError(w http.ResponseWriter, status int, message, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
