package artifact

import (
	"strings"
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"simple prompt", "a sunset over mountains", "a-sunset-over-mountains"},
		{"truncated to four words", "a very long prompt with many words", "a-very-long-prompt"},
		{"uppercase lowered", "A Cat Wearing Sunglasses", "a-cat-wearing"},
		{"punctuation stripped", "hello, world! (draft #2)", "hello-world-draft-2"},
		{"unicode letters kept", "café über straße", "café-über-straße"},
		{"empty prompt falls back", "", "image"},
		{"only punctuation falls back", "!!! ??? ...", "image"},
		{"path characters stripped", "../../etc/passwd rm -rf", "etcpasswd-rm-rf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slug(tt.prompt)
			if got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestSlug_LengthCap(t *testing.T) {
	slug := Slug("pneumonoultramicroscopicsilicovolcanoconiosis supercalifragilisticexpialidocious")
	if n := len([]rune(slug)); n > slugMaxLen {
		t.Errorf("Slug() length = %d runes, want <= %d", n, slugMaxLen)
	}
	if strings.HasSuffix(slug, "-") {
		t.Errorf("Slug() = %q, trailing hyphen after truncation", slug)
	}
}

func TestSlug_SafeCharset(t *testing.T) {
	prompts := []string{
		"a/b\\c:d*e?f\"g<h>i|j",
		"prompt\x00with\tcontrol\nchars",
		"日本語のプロンプトです、画像を生成して",
		strings.Repeat("word ", 50),
	}

	for _, prompt := range prompts {
		slug := Slug(prompt)
		if strings.ContainsAny(slug, "/\\:*?\"<>| \x00\t\n") {
			t.Errorf("Slug(%q) = %q contains unsafe characters", prompt, slug)
		}
	}
}

func TestFilename(t *testing.T) {
	fixedTime := time.Date(2025, 1, 15, 10, 30, 45, 0, time.UTC)

	tests := []struct {
		prompt string
		edit   bool
		want   string
	}{
		{"a sunset over mountains", false, "imagen_a-sunset-over-mountains_20250115-103045.png"},
		{"make it more vibrant", true, "imagen-edit_make-it-more-vibrant_20250115-103045.png"},
		{"", false, "imagen_image_20250115-103045.png"},
	}

	for _, tt := range tests {
		got := Filename(tt.prompt, tt.edit, fixedTime)
		if got != tt.want {
			t.Errorf("Filename(%q, %v) = %q, want %q", tt.prompt, tt.edit, got, tt.want)
		}
	}
}

func TestFilename_Deterministic(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	a := Filename("same prompt", false, fixedTime)
	b := Filename("same prompt", false, fixedTime)
	if a != b {
		t.Errorf("Filename() not deterministic: %q != %q", a, b)
	}
}

func TestFilename_NoPathSeparators(t *testing.T) {
	name := Filename("../escape /tmp attempt \\windows", true, time.Now())
	if strings.ContainsAny(name, "/\\") {
		t.Errorf("Filename() = %q contains path separators", name)
	}
}
