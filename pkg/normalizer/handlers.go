package normalizer

import (
	"net/http"

	"github.com/NVIDIA/semver-parser/pkg/errors"
	"github.com/NVIDIA/semver-parser/pkg/serializer"
	"github.com/NVIDIA/semver-parser/pkg/server"
)

// ValidationResult is the response body for the validate endpoint.
type ValidationResult struct {
	Version string `json:"version" yaml:"version"`
	Valid   bool   `json:"valid" yaml:"valid"`
}

// HandleParse processes GET /v1/parse requests end-to-end, ensuring
// structured error responses consistent with the rest of the server surface.
func (n *Normalizer) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	version := r.URL.Query().Get("version")
	if version == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"missing required parameter: version", false, nil)
		return
	}

	result, err := n.Normalize(version)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid version string", false, map[string]any{
				"version": version,
				"error":   err.Error(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleBump processes GET /v1/bump requests. The level query parameter
// defaults to patch.
func (n *Normalizer) HandleBump(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	q := r.URL.Query()
	version := q.Get("version")
	if version == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"missing required parameter: version", false, nil)
		return
	}

	levelParam := q.Get("level")
	if levelParam == "" {
		levelParam = string(LevelPatch)
	}
	level, err := ParseLevel(levelParam)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid bump level", false, map[string]any{
				"level": levelParam,
				"error": err.Error(),
			})
		return
	}

	result, err := n.Bump(version, level)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid version string", false, map[string]any{
				"version": version,
				"error":   err.Error(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleValidate processes GET /v1/validate requests. The version is
// checked against the composer grammar without normalization.
func (n *Normalizer) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	version := r.URL.Query().Get("version")
	if version == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"missing required parameter: version", false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ValidationResult{
		Version: version,
		Valid:   n.Check(version),
	})
}
