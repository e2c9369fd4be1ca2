// Package reference loads the reference images that guide edit requests.
package reference

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/turricr/genimg/pkg/models"
)

var ErrNotAnImage = errors.New("file is not an image")

// Load reads each path and sniffs its MIME type. Any unreadable or
// non-image file fails the whole load: an edit that silently drops a
// reference produces the wrong image.
func Load(paths []string) ([]models.Reference, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	refs := make([]models.Reference, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read reference %s: %w", path, err)
		}

		mimeType := http.DetectContentType(data)
		if !strings.HasPrefix(mimeType, "image/") {
			return nil, fmt.Errorf("%w: %s (detected %s)", ErrNotAnImage, path, mimeType)
		}

		refs = append(refs, models.Reference{
			Path:     path,
			Data:     data,
			MimeType: mimeType,
		})
	}

	return refs, nil
}
