// Package provider defines the contract with the remote image-generation
// service.
package provider

import (
	"context"
	"errors"

	"github.com/turricr/genimg/pkg/models"
)

var (
	ErrAPIKeyRequired   = errors.New("API key is required")
	ErrGenerationFailed = errors.New("image generation failed")
	ErrNoImageData      = errors.New("no image found in API response")
)

// Provider issues a single blocking generation call and returns the image
// bytes. No retries, no batching; a failure is surfaced verbatim.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req *models.Request, refs []models.Reference) (*models.Image, error)
}

type Config struct {
	APIKey     string
	TimeoutSec int
}
