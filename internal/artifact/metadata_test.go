package artifact

import (
	"strings"
	"testing"
	"time"
)

func testMetadata() *Metadata {
	return &Metadata{
		Prompt:      "a sunset over mountains",
		Model:       "gemini-3-pro-image-preview",
		Resolution:  "2K",
		AspectRatio: "1:1",
		GeneratedAt: time.Date(2025, 1, 15, 10, 30, 45, 0, time.UTC),
	}
}

func TestMetadataPath(t *testing.T) {
	tests := []struct {
		imagePath string
		want      string
	}{
		{"/tmp/imagen_sunset_20250115-103045.png", "/tmp/imagen_sunset_20250115-103045-metadata.md"},
		{"photo.jpeg", "photo-metadata.md"},
		{"/a/b/noext", "/a/b/noext-metadata.md"},
	}

	for _, tt := range tests {
		if got := MetadataPath(tt.imagePath); got != tt.want {
			t.Errorf("MetadataPath(%q) = %q, want %q", tt.imagePath, got, tt.want)
		}
	}
}

func TestMetadata_AltText(t *testing.T) {
	m := testMetadata()
	if got := m.AltText(); got != "a sunset over mountains" {
		t.Errorf("AltText() = %q, want full short prompt", got)
	}

	m.Prompt = strings.Repeat("x", 150)
	got := m.AltText()
	if !strings.HasSuffix(got, "...") {
		t.Errorf("AltText() = %q, want truncation marker", got)
	}
	if len([]rune(got)) != altTextMaxLen+3 {
		t.Errorf("AltText() length = %d, want %d", len([]rune(got)), altTextMaxLen+3)
	}
}

func TestMetadata_Caption(t *testing.T) {
	m := testMetadata()
	m.Prompt = "A red barn. Snow in the background."
	if got := m.Caption(); got != "A red barn" {
		t.Errorf("Caption() = %q, want first sentence", got)
	}

	m.Prompt = strings.Repeat("y", 120)
	if got := m.Caption(); len([]rune(got)) != captionMaxLen {
		t.Errorf("Caption() length = %d, want %d", len([]rune(got)), captionMaxLen)
	}

	m.Prompt = "short prompt no period"
	if got := m.Caption(); got != "short prompt no period" {
		t.Errorf("Caption() = %q, want whole prompt", got)
	}
}

func TestMetadata_Render(t *testing.T) {
	m := testMetadata()
	body := m.Render("imagen_a-sunset-over-mountains_20250115-103045.png")

	wantFragments := []string{
		"# Image Metadata",
		"**File**: `imagen_a-sunset-over-mountains_20250115-103045.png`",
		"**Generated**: 2025-01-15 10:30:45",
		"**Model**: gemini-3-pro-image-preview",
		"**Resolution**: 2K",
		"**Aspect Ratio**: 1:1",
		"a sunset over mountains",
		"## Reference Images",
		"- None",
		"**Tool**: genimg",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(body, fragment) {
			t.Errorf("Render() missing %q", fragment)
		}
	}
}

func TestMetadata_Render_References(t *testing.T) {
	m := testMetadata()
	m.References = []string{"/refs/style.jpg", "photo.png"}
	body := m.Render("out.png")

	if strings.Contains(body, "- None") {
		t.Error("Render() shows None despite references")
	}
	if !strings.Contains(body, "- `style.jpg`") {
		t.Error("Render() missing basename of first reference")
	}
	if !strings.Contains(body, "- `photo.png`") {
		t.Error("Render() missing second reference")
	}
	if strings.Contains(body, "/refs/style.jpg") {
		t.Error("Render() leaks full reference path, want basename only")
	}
}
