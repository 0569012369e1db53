package picklist

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sureshguna14/template-automation/internal/tabular"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler exposes picklist application as an HTTP endpoint.
type Handler struct {
	service      *Service
	stagingDir   string
	defaultSheet string
}

// NewHTTPHandler wraps the service with a POST endpoint that streams the
// updated workbook back on success. Picklist selections arrive as a JSON
// object in the "values" form field.
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

	var values map[string]string
	if err := json.Unmarshal([]byte(r.FormValue("values")), &values); err != nil {
		http.Error(w, fmt.Sprintf("invalid picklist values: %v", err), http.StatusBadRequest)
		return
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

	if !h.service.Apply(templatePath, sheetName, values) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"status": false,
			"error":  "failed to apply picklist values",
		})
		return
	}

	f, err := os.Open(templatePath)
	if err != nil {
		http.Error(w, fmt.Sprintf("open updated workbook: %v", err), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "updated_"+header.Filename))
	_, _ = io.Copy(w, f)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
