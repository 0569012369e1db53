package mapping

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// UpdateHandler exposes mapping updates as an HTTP endpoint.
type UpdateHandler struct {
	service    *Service
	stagingDir string
}

// NewUpdateHandler wraps the service with a POST endpoint that streams the
// annotated source workbook back on success.
func NewUpdateHandler(service *Service, stagingDir string) http.Handler {
	return &UpdateHandler{service: service, stagingDir: stagingDir}
}

func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kind, sourcePath, sourceName, mappingPath, cleanup, ok := parseMappingForm(w, r, h.stagingDir)
	if !ok {
		return
	}
	defer cleanup()

	if !h.service.Update(r.Context(), kind, sourcePath, mappingPath) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"status": false,
			"error":  "mapping update failed",
		})
		return
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		http.Error(w, fmt.Sprintf("open annotated workbook: %v", err), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "updated_"+sourceName))
	_, _ = io.Copy(w, f)
}

// ValidateHandler exposes the count-only mapping validators.
type ValidateHandler struct {
	service    *Service
	stagingDir string
}

// NewValidateHandler wraps the service with a POST endpoint returning the
// kind-specific counts as JSON.
func NewValidateHandler(service *Service, stagingDir string) http.Handler {
	return &ValidateHandler{service: service, stagingDir: stagingDir}
}

func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kind, sourcePath, _, mappingPath, cleanup, ok := parseMappingForm(w, r, h.stagingDir)
	if !ok {
		return
	}
	defer cleanup()

	switch kind {
	case domain.MappingAccountLocation:
		writeJSON(w, http.StatusOK, h.service.ValidateAccountLocation(r.Context(), sourcePath, mappingPath))
	case domain.MappingInstallProduct:
		writeJSON(w, http.StatusOK, h.service.ValidateInstallProduct(r.Context(), sourcePath, mappingPath))
	}
}

func parseMappingForm(w http.ResponseWriter, r *http.Request, stagingDir string) (domain.MappingKind, string, string, string, func(), bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", "", "", "", nil, false
	}
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		http.Error(w, fmt.Sprintf("invalid form data: %v", err), http.StatusBadRequest)
		return "", "", "", "", nil, false
	}

	kind, err := domain.ParseMappingKind(strings.TrimSpace(r.FormValue("mappingType")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", "", "", "", nil, false
	}

	sourceFile, sourceHeader, err := r.FormFile("source")
	if err != nil {
		http.Error(w, fmt.Sprintf("source file required: %v", err), http.StatusBadRequest)
		return "", "", "", "", nil, false
	}
	defer sourceFile.Close()

	sourcePath, cleanupSource, err := tabular.StageUpload(stagingDir, sourceHeader.Filename, sourceFile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", "", "", "", nil, false
	}

	mappingFile, mappingHeader, err := r.FormFile("mapping")
	if err != nil {
		cleanupSource()
		http.Error(w, fmt.Sprintf("mapping file required: %v", err), http.StatusBadRequest)
		return "", "", "", "", nil, false
	}
	defer mappingFile.Close()

	mappingPath, cleanupMapping, err := tabular.StageUpload(stagingDir, mappingHeader.Filename, mappingFile)
	if err != nil {
		cleanupSource()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", "", "", "", nil, false
	}

	cleanup := func() {
		cleanupSource()
		cleanupMapping()
	}
	return kind, sourcePath, sourceHeader.Filename, mappingPath, cleanup, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
