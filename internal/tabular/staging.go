package tabular

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StageUpload copies an uploaded stream into the staging directory, keeping
// the original extension so format dispatch keeps working. The returned
// cleanup removes the staged file.
func StageUpload(dir, fileName string, r io.Reader) (string, func(), error) {
	if strings.TrimSpace(dir) == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("ensure staging directory: %w", err)
	}

	ext := filepath.Ext(fileName)
	f, err := os.CreateTemp(dir, "upload-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create staged file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("stage upload: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close staged file: %w", err)
	}
	return path, cleanup, nil
}
