package artifact

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdinPrompter_ReadsPath(t *testing.T) {
	out := &bytes.Buffer{}
	p := &StdinPrompter{In: strings.NewReader("/custom/out.png\n"), Out: out}

	got, err := p.PromptPath("/suggested/imagen_x.png")
	if err != nil {
		t.Fatalf("PromptPath() error = %v", err)
	}
	if got != "/custom/out.png" {
		t.Errorf("PromptPath() = %q, want /custom/out.png", got)
	}
	if !strings.Contains(out.String(), "/suggested/imagen_x.png") {
		t.Error("PromptPath() did not echo the suggestion")
	}
}

func TestStdinPrompter_EmptyAnswer(t *testing.T) {
	p := &StdinPrompter{In: strings.NewReader("\n"), Out: &bytes.Buffer{}}

	got, err := p.PromptPath("/suggested/imagen_x.png")
	if err != nil {
		t.Fatalf("PromptPath() error = %v", err)
	}
	if got != "" {
		t.Errorf("PromptPath() = %q, want empty", got)
	}
}

func TestStdinPrompter_EOFWithoutNewline(t *testing.T) {
	p := &StdinPrompter{In: strings.NewReader("  /spaced/path.png  "), Out: &bytes.Buffer{}}

	got, err := p.PromptPath("x")
	if err != nil {
		t.Fatalf("PromptPath() error = %v", err)
	}
	if got != "/spaced/path.png" {
		t.Errorf("PromptPath() = %q, want trimmed path", got)
	}
}
