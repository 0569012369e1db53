package synth

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

// Handler exposes template updates as an HTTP endpoint.
type Handler struct {
	service      *Service
	stagingDir   string
	defaultSheet string
}

// NewHTTPHandler wraps the service with a POST endpoint that streams the
// updated workbook back on success.
func NewHTTPHandler(service *Service, stagingDir, defaultSheet string) http.Handler {
	return &Handler{service: service, stagingDir: stagingDir, defaultSheet: defaultSheet}
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

	templateType, err := domain.ParseTemplateType(strings.TrimSpace(r.FormValue("templateType")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sheetName := strings.TrimSpace(r.FormValue("sheetName"))
	if sheetName == "" {
		sheetName = h.defaultSheet
	}

	templatePath, templateName, cleanupTemplate, err := stageFormFile(r, "template", h.stagingDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer cleanupTemplate()

	sourcePath, _, cleanupSource, err := stageFormFile(r, "source", h.stagingDir)
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

	var reference *domain.Table
	if refPath, _, cleanupRef, err := stageFormFile(r, "reference", h.stagingDir); err == nil {
		defer cleanupRef()
		ref, err := tabular.ReadSource(refPath)
		if err != nil {
			http.Error(w, fmt.Sprintf("read reference data: %v", err), http.StatusBadRequest)
			return
		}
		reference = &ref
	}

	result, err := h.service.UpdateTemplate(r.Context(), Request{
		TemplateType: templateType,
		TemplatePath: templatePath,
		SheetName:    sheetName,
		Source:       source,
		Reference:    reference,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	if !result.Status {
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	streamWorkbook(w, templatePath, "updated_"+templateName)
}

// stageFormFile copies one multipart upload into the staging directory.
func stageFormFile(r *http.Request, field, stagingDir string) (string, string, func(), error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", "", nil, fmt.Errorf("%s file required: %w", field, err)
	}
	defer file.Close()

	path, cleanup, err := tabular.StageUpload(stagingDir, header.Filename, file)
	if err != nil {
		return "", "", nil, err
	}
	return path, header.Filename, cleanup, nil
}

func streamWorkbook(w http.ResponseWriter, path, downloadName string) {
	f, err := os.Open(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("open updated workbook: %v", err), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	_, _ = io.Copy(w, f)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
