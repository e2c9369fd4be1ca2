package artifact

import (
	"path/filepath"
	"time"

	"github.com/turricr/genimg/internal/detect"
)

// Prompter asks the operator for a save path. An empty answer means the
// suggestion stands.
type Prompter interface {
	PromptPath(suggested string) (string, error)
}

// Resolver picks the save path for a generated image. Outcomes in strict
// priority order: explicit output path, interactive prompt, detector
// suggestion with a generated filename.
type Resolver struct {
	Detector *detect.Detector
	Prompter Prompter
	Now      func() time.Time
}

func NewResolver(detector *detect.Detector, prompter Prompter, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{Detector: detector, Prompter: prompter, Now: now}
}

// ResolveOptions carries the caller's save preferences for one invocation.
type ResolveOptions struct {
	Output  string
	Ask     bool
	Prompt  string
	Edit    bool
	WorkDir string
}

func (r *Resolver) Resolve(opts ResolveOptions) (string, error) {
	if opts.Output != "" {
		return opts.Output, nil
	}

	dir := r.Detector.Resolve(opts.WorkDir)
	suggested := filepath.Join(dir, Filename(opts.Prompt, opts.Edit, r.Now()))

	if opts.Ask && r.Prompter != nil {
		answer, err := r.Prompter.PromptPath(suggested)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}

	return suggested, nil
}
