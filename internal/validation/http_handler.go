package validation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

// Handler exposes template validation as an HTTP endpoint.
type Handler struct {
	engine       *Engine
	stagingDir   string
	defaultSheet string
}

// NewHTTPHandler wraps the engine with a POST endpoint returning the
// validation summary as JSON.
func NewHTTPHandler(engine *Engine, stagingDir, defaultSheet string) http.Handler {
	return &Handler{engine: engine, stagingDir: stagingDir, defaultSheet: defaultSheet}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		http.Error(w, fmt.Sprintf("invalid form data: %v", err), http.StatusBadRequest)
		return
	}

	var templates []domain.TemplateType
	for _, raw := range r.MultipartForm.Value["templateType"] {
		t, err := domain.ParseTemplateType(strings.TrimSpace(raw))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		templates = append(templates, t)
	}

	sheetName := strings.TrimSpace(r.FormValue("sheetName"))
	if sheetName == "" {
		sheetName = h.defaultSheet
	}

	file, header, err := r.FormFile("template")
	if err != nil {
		http.Error(w, fmt.Sprintf("template file required: %v", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	templatePath, cleanup, err := tabular.StageUpload(h.stagingDir, header.Filename, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer cleanup()

	req := Request{
		TemplatePath: templatePath,
		SheetName:    sheetName,
		Templates:    templates,
	}

	if sourceFile, sourceHeader, err := r.FormFile("source"); err == nil {
		defer sourceFile.Close()
		sourcePath, cleanupSource, err := tabular.StageUpload(h.stagingDir, sourceHeader.Filename, sourceFile)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer cleanupSource()

		source, err := tabular.ReadSource(sourcePath)
		if err != nil {
			http.Error(w, fmt.Sprintf("read source data: %v", err), http.StatusBadRequest)
			return
		}
		req.Source = &source
	}

	summary := h.engine.Validate(r.Context(), req)
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
