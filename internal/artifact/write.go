package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists images and their metadata sidecars. The image write is
// authoritative; the sidecar is best-effort and reported separately by the
// caller.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) WriteImage(path string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("no image data available")
	}

	if err := w.ensureDir(path); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// WriteMetadata writes the sidecar next to the image and returns its path.
// Callers treat a failure here as a warning, never as invocation failure.
func (w *Writer) WriteMetadata(imagePath string, meta *Metadata) (string, error) {
	path := MetadataPath(imagePath)
	body := meta.Render(filepath.Base(imagePath))

	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}

	return path, nil
}

func (w *Writer) ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
