package artifact

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// StdinPrompter implements Prompter over a reader/writer pair. When reading
// from a real stdin that is not a terminal it declines to block and returns
// an empty answer so the resolver falls through to the suggestion.
type StdinPrompter struct {
	In  io.Reader
	Out io.Writer
}

func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{In: os.Stdin, Out: os.Stderr}
}

func (p *StdinPrompter) PromptPath(suggested string) (string, error) {
	if f, ok := p.In.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return "", nil
	}

	fmt.Fprintf(p.Out, "\nSuggested location: %s\n", suggested)
	fmt.Fprint(p.Out, "Save path (press enter to accept): ")

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read save path: %w", err)
	}

	return strings.TrimSpace(line), nil
}
