package models

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrEmptyPrompt            = errors.New("prompt cannot be empty")
	ErrInvalidAspectRatio     = errors.New("invalid aspect ratio")
	ErrInvalidResolution      = errors.New("invalid resolution")
	ErrResolutionNotSupported = errors.New("resolution not supported by model")
	ErrReferencesNotSupported = errors.New("reference images not supported by model")
	ErrTooManyReferences      = errors.New("too many reference images for model")
	ErrInvalidPersonPolicy    = errors.New("invalid person generation policy")
)

type Mode string

const (
	ModeGenerate Mode = "generate"
	ModeEdit     Mode = "edit"
)

type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectWide      AspectRatio = "16:9"
	AspectTall      AspectRatio = "9:16"
	AspectLandscape AspectRatio = "4:3"
	AspectPortrait  AspectRatio = "3:4"
)

func ValidAspectRatios() []AspectRatio {
	return []AspectRatio{AspectSquare, AspectWide, AspectTall, AspectLandscape, AspectPortrait}
}

func (a AspectRatio) IsValid() bool {
	return slices.Contains(ValidAspectRatios(), a)
}

func (a AspectRatio) String() string {
	return string(a)
}

type Resolution string

const (
	Resolution1K Resolution = "1K"
	Resolution2K Resolution = "2K"
	Resolution4K Resolution = "4K"
)

func ValidResolutions() []Resolution {
	return []Resolution{Resolution1K, Resolution2K, Resolution4K}
}

func (r Resolution) IsValid() bool {
	return slices.Contains(ValidResolutions(), r)
}

func (r Resolution) String() string {
	return string(r)
}

// rank orders resolutions so tier maximums can be compared.
func (r Resolution) rank() int {
	switch r {
	case Resolution1K:
		return 1
	case Resolution2K:
		return 2
	case Resolution4K:
		return 3
	}
	return 0
}

type PersonPolicy string

const (
	PersonDontAllow  PersonPolicy = "dont_allow"
	PersonAllowAdult PersonPolicy = "allow_adult"
	PersonAllowAll   PersonPolicy = "allow_all"
)

func ValidPersonPolicies() []PersonPolicy {
	return []PersonPolicy{PersonDontAllow, PersonAllowAdult, PersonAllowAll}
}

func (p PersonPolicy) IsValid() bool {
	return slices.Contains(ValidPersonPolicies(), p)
}

func (p PersonPolicy) String() string {
	return string(p)
}

// Request describes a single generation or edit invocation.
type Request struct {
	Prompt       string
	Model        string
	Mode         Mode
	AspectRatio  AspectRatio
	Resolution   Resolution
	PersonPolicy PersonPolicy
	References   []string
}

func NewRequest(prompt string) *Request {
	return &Request{
		Prompt:       prompt,
		Mode:         ModeGenerate,
		AspectRatio:  AspectSquare,
		Resolution:   Resolution2K,
		PersonPolicy: PersonAllowAdult,
	}
}

// Image is the result of a generation call: raw bytes plus the MIME type
// reported by the remote service.
type Image struct {
	Data     []byte
	MimeType string
}

// Reference is a loaded reference image ready to be sent to the model.
type Reference struct {
	Path     string
	Data     []byte
	MimeType string
}

// ModelSpec describes one tier of the remote image service.
type ModelSpec struct {
	Name          string
	Alias         string
	Description   string
	UseCase       string
	MaxRefs       int
	MaxResolution Resolution
}

// Validate checks a request against the tier's capabilities. All failures
// here are reported before any network call is made.
func (s *ModelSpec) Validate(req *Request) error {
	if req.Prompt == "" {
		return ErrEmptyPrompt
	}

	if !req.AspectRatio.IsValid() {
		return fmt.Errorf("%w: %q not in %v", ErrInvalidAspectRatio, req.AspectRatio, ValidAspectRatios())
	}

	if !req.Resolution.IsValid() {
		return fmt.Errorf("%w: %q not in %v", ErrInvalidResolution, req.Resolution, ValidResolutions())
	}

	if req.Resolution.rank() > s.MaxResolution.rank() {
		return fmt.Errorf("%w: %s supports up to %s, got %s", ErrResolutionNotSupported, s.Alias, s.MaxResolution, req.Resolution)
	}

	if !req.PersonPolicy.IsValid() {
		return fmt.Errorf("%w: %q not in %v", ErrInvalidPersonPolicy, req.PersonPolicy, ValidPersonPolicies())
	}

	if len(req.References) > 0 && s.MaxRefs == 0 {
		return fmt.Errorf("%w: %s (use --model pro instead)", ErrReferencesNotSupported, s.Alias)
	}

	if len(req.References) > s.MaxRefs {
		return fmt.Errorf("%w: max %d, got %d", ErrTooManyReferences, s.MaxRefs, len(req.References))
	}

	return nil
}

// ApplyDefaults fills the request's model name from the tier and switches
// the mode to edit when reference images are present.
func (s *ModelSpec) ApplyDefaults(req *Request) {
	if req.Model == "" {
		req.Model = s.Name
	}
	if len(req.References) > 0 {
		req.Mode = ModeEdit
	}
}

// Registry maps tier aliases and full model names to their specs.
type Registry struct {
	specs map[string]*ModelSpec
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[string]*ModelSpec),
	}
}

func (r *Registry) Register(spec *ModelSpec) {
	if _, ok := r.specs[spec.Alias]; !ok {
		r.order = append(r.order, spec.Alias)
	}
	r.specs[spec.Alias] = spec
	r.specs[spec.Name] = spec
}

// Resolve accepts either a tier alias ("pro") or a full model name.
func (r *Registry) Resolve(nameOrAlias string) (*ModelSpec, bool) {
	spec, ok := r.specs[nameOrAlias]
	return spec, ok
}

// Aliases returns registered tier aliases in registration order.
func (r *Registry) Aliases() []string {
	return slices.Clone(r.order)
}

func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(&ModelSpec{
		Name:          "gemini-2.5-flash-image",
		Alias:         "flash",
		Description:   "Fast Gemini image generation",
		UseCase:       "Quick iterations, testing, rapid prototyping",
		MaxRefs:       0,
		MaxResolution: Resolution2K,
	})

	r.Register(&ModelSpec{
		Name:          "gemini-3-pro-image-preview",
		Alias:         "pro",
		Description:   "Professional Gemini image generation with editing",
		UseCase:       "Finals, editing, reference images, professional work",
		MaxRefs:       14,
		MaxResolution: Resolution4K,
	})

	return r
}
