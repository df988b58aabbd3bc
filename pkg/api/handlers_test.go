package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"laneinfer/pkg/corpus"
	"laneinfer/pkg/locale"
)

func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.New(locale.NewDefault(locale.Right))
	if err != nil {
		t.Fatalf("corpus.New() error = %v", err)
	}
	return c
}

func TestHandleLanes_Success(t *testing.T) {
	h := NewHandlers(testCorpus(t))

	body := `{"tags":{"highway":"residential"},"locale":{"driving_side":"right"}}`
	req := httptest.NewRequest("POST", "/api/v1/lanes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleLanes(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", w.Code, w.Body.String())
	}

	var resp LanesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Road == nil {
		t.Error("Road = nil, want a populated road")
	}
}

func TestHandleLanes_InvalidJSON(t *testing.T) {
	h := NewHandlers(testCorpus(t))

	req := httptest.NewRequest("POST", "/api/v1/lanes", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleLanes(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleLanes_MissingContentType(t *testing.T) {
	h := NewHandlers(testCorpus(t))

	body := `{"tags":{"highway":"residential"}}`
	req := httptest.NewRequest("POST", "/api/v1/lanes", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleLanes(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleLanes_MissingTags(t *testing.T) {
	h := NewHandlers(testCorpus(t))

	body := `{"tags":{}}`
	req := httptest.NewRequest("POST", "/api/v1/lanes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleLanes(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleLanes_UnsupportedCombination(t *testing.T) {
	h := NewHandlers(testCorpus(t))

	// LHT locale with a bicycle lane is a hard unsupported error.
	body := `{"tags":{"highway":"residential","cycleway:right":"lane"},"locale":{"driving_side":"left"}}`
	req := httptest.NewRequest("POST", "/api/v1/lanes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleLanes(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422. body: %s", w.Code, w.Body.String())
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Kind != "unsupported" {
		t.Errorf("Kind = %q, want %q", resp.Kind, "unsupported")
	}
}

func TestHandleNearest_Success(t *testing.T) {
	h := NewHandlers(testCorpus(t))

	req := httptest.NewRequest("GET", "/api/v1/lanes/nearest?lat=37.7749&lon=-122.4194", nil)
	w := httptest.NewRecorder()

	h.HandleNearest(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", w.Code, w.Body.String())
	}

	var resp NearestLanesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.WayID == 0 {
		t.Error("WayID = 0, want a matched fixture")
	}
}

func TestHandleNearest_InvalidCoordinates(t *testing.T) {
	h := NewHandlers(testCorpus(t))

	req := httptest.NewRequest("GET", "/api/v1/lanes/nearest?lat=notanumber&lon=-122.4194", nil)
	w := httptest.NewRecorder()

	h.HandleNearest(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleNearest_EmptyCorpus(t *testing.T) {
	h := NewHandlers(&corpus.Corpus{})

	req := httptest.NewRequest("GET", "/api/v1/lanes/nearest?lat=0&lon=0", nil)
	w := httptest.NewRecorder()

	h.HandleNearest(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	h := NewHandlers(testCorpus(t))

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()

	h.HandleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	var resp HealthResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != "ok" {
		t.Errorf("status = %q, want 'ok'", resp.Status)
	}
}
