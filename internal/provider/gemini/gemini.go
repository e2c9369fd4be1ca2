// Package gemini implements the provider contract on the official Gemini
// SDK.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/turricr/genimg/internal/provider"
	"github.com/turricr/genimg/pkg/models"
)

type Provider struct {
	client *genai.Client
}

func New(ctx context.Context, cfg *provider.Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, provider.ErrAPIKeyRequired
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Provider{client: client}, nil
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) Generate(ctx context.Context, req *models.Request, refs []models.Reference) (*models.Image, error) {
	contents := buildContents(req.Prompt, refs)
	config := buildConfig(req)

	resp, err := p.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrGenerationFailed, err)
	}

	return extractImage(resp)
}

// buildContents places reference images before the prompt text, mirroring
// the order the model expects for edit requests.
func buildContents(prompt string, refs []models.Reference) []*genai.Content {
	parts := make([]*genai.Part, 0, len(refs)+1)
	for _, ref := range refs {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: ref.MimeType,
				Data:     ref.Data,
			},
		})
	}
	parts = append(parts, &genai.Part{Text: prompt})

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func buildConfig(req *models.Request) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: req.AspectRatio.String(),
			ImageSize:   req.Resolution.String(),
		},
	}
}

// extractImage returns the first inline-data part of the first candidate.
func extractImage(resp *genai.GenerateContentResponse) (*models.Image, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", provider.ErrGenerationFailed)
	}

	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &models.Image{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}

	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w: finish reason %s", provider.ErrGenerationFailed, candidate.FinishReason)
	}

	return nil, provider.ErrNoImageData
}
