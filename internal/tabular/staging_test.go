package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStageUploadKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	path, cleanup, err := StageUpload(dir, "contracts.csv", strings.NewReader("Name\nA\n"))
	if err != nil {
		t.Fatalf("StageUpload returned error: %v", err)
	}
	if filepath.Ext(path) != ".csv" {
		t.Fatalf("expected .csv extension, got %q", path)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read staged file: %v", err)
	}
	if string(payload) != "Name\nA\n" {
		t.Fatalf("unexpected staged content %q", payload)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("cleanup should remove the staged file")
	}
}
