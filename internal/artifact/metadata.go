package artifact

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	altTextMaxLen = 100
	captionMaxLen = 80
)

// Metadata is the accessibility record written alongside a generated image.
type Metadata struct {
	Prompt      string
	Model       string
	Resolution  string
	AspectRatio string
	References  []string
	GeneratedAt time.Time
}

// MetadataPath derives the sidecar path from the image path: the extension
// is replaced with a "-metadata.md" suffix.
func MetadataPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return imagePath[:len(imagePath)-len(ext)] + "-metadata.md"
}

// AltText is the prompt truncated to a screen-reader friendly length. No
// semantic analysis happens here.
func (m *Metadata) AltText() string {
	runes := []rune(m.Prompt)
	if len(runes) > altTextMaxLen {
		return string(runes[:altTextMaxLen]) + "..."
	}
	return m.Prompt
}

// Caption is the first sentence of the prompt, or its first 80 runes when
// the prompt has no sentence break.
func (m *Metadata) Caption() string {
	if idx := strings.Index(m.Prompt, "."); idx >= 0 {
		return m.Prompt[:idx]
	}
	runes := []rune(m.Prompt)
	if len(runes) > captionMaxLen {
		return string(runes[:captionMaxLen])
	}
	return m.Prompt
}

// Render produces the sidecar's Markdown body for the given image filename.
func (m *Metadata) Render(imageName string) string {
	var refList strings.Builder
	if len(m.References) == 0 {
		refList.WriteString("- None")
	} else {
		for i, ref := range m.References {
			if i > 0 {
				refList.WriteString("\n")
			}
			fmt.Fprintf(&refList, "- `%s`", filepath.Base(ref))
		}
	}

	return fmt.Sprintf(`# Image Metadata

**File**: `+"`%s`"+`
**Generated**: %s
**Model**: %s
**Resolution**: %s
**Aspect Ratio**: %s

---

## Generation Prompt

`+"```"+`
%s
`+"```"+`

---

## Accessibility Metadata

### Alt Text (Suggested)

`+"```"+`
%s
`+"```"+`

### Caption (Suggested)

`+"```"+`
%s
`+"```"+`

### Long Description

`+"```"+`
A generated image based on the prompt: "%s". Created using Google Gemini Image (%s) at %s resolution with %s aspect ratio.
`+"```"+`

---

## Reference Images

%s

---

## Usage Notes

- **Purpose**: [Add intended use - e.g., product photo, marketing banner, social media]
- **Context**: [Add context about where this will be used]
- **Edits Needed**: [Note any manual edits or adjustments needed]

---

**Metadata Version**: 1.0
**Tool**: genimg
`,
		imageName,
		m.GeneratedAt.Format("2006-01-02 15:04:05"),
		m.Model,
		m.Resolution,
		m.AspectRatio,
		m.Prompt,
		m.AltText(),
		m.Caption(),
		m.Prompt,
		m.Model,
		m.Resolution,
		m.AspectRatio,
		refList.String(),
	)
}
