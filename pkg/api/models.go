package api

// LanesRequest is the JSON body for POST /api/v1/lanes.
type LanesRequest struct {
	Tags   map[string]string `json:"tags"`
	Locale LocaleJSON        `json:"locale"`
	Config ConfigJSON        `json:"config"`
}

// LocaleJSON is the wire shape of a locale.Locale.
type LocaleJSON struct {
	DrivingSide string `json:"driving_side"` // "left" or "right"; defaults to "right"
	// InferredSidewalks defaults to true (locale.NewDefault's policy) when
	// omitted from the request body.
	InferredSidewalks *bool `json:"inferred_sidewalks,omitempty"`
}

// ConfigJSON is the wire shape of a lanes.Config.
type ConfigJSON struct {
	ErrorOnWarnings   bool `json:"error_on_warnings"`
	IncludeSeparators bool `json:"include_separators"`
}

// WarningJSON is the wire shape of one diag.Msg.
type WarningJSON struct {
	Kind        string            `json:"kind"`
	Description string            `json:"description"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// LanesResponse is the JSON response for a successful lanes inference.
type LanesResponse struct {
	Road     interface{}   `json:"road"`
	Warnings []WarningJSON `json:"warnings,omitempty"`
}

// NearestLanesResponse adds the matched way's identity to LanesResponse.
type NearestLanesResponse struct {
	WayID    int64         `json:"way_id"`
	Lat      float64       `json:"lat"`
	Lon      float64       `json:"lon"`
	Road     interface{}   `json:"road"`
	Warnings []WarningJSON `json:"warnings,omitempty"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
