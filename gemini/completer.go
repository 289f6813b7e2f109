// Package gemini implements structured completions using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/jobparse"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements jobparse.Completer at compile time.
var _ jobparse.Completer = (*Completer)(nil)

// Generator is the subset of *genai.Models used by Completer.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Completer implements jobparse.Completer using Google Gemini.
type Completer struct {
	models Generator
	model  string
}

// NewCompleter creates a new Completer. Pass client.Models as models.
// An empty model selects DefaultModel.
func NewCompleter(models Generator, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{models: models, model: model}
}

// Complete sends the user message with req.System as system instruction.
func (c *Completer) Complete(ctx context.Context, req *jobparse.CompletionRequest) (string, error) {
	if req == nil || req.User == "" {
		return "", jobparse.Errorf(jobparse.EINVALID, "user message required")
	}
	if c.models == nil {
		return "", jobparse.Errorf(jobparse.EINTERNAL, "gemini client not configured")
	}

	result, err := c.models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: req.User}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", jobparse.WrapError(jobparse.EUNAVAILABLE, err, "gemini request failed")
	}
	if result == nil {
		return "", jobparse.Errorf(jobparse.EINTERNAL, "gemini returned nil result")
	}
	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return "", jobparse.Errorf(jobparse.EINVALID, "prompt blocked: %s", fb.BlockReason)
	}
	if len(result.Candidates) == 0 {
		return "", jobparse.Errorf(jobparse.EINTERNAL, "gemini returned no candidates")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for req.
func BuildConfig(req *jobparse.CompletionRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = ConvertSchema(req.Schema)
	}
	return config
}

// ConvertSchema translates a jobparse.Schema into a Gemini schema.
// Properties are ordered as listed in Required.
func ConvertSchema(s *jobparse.Schema) *genai.Schema {
	out := &genai.Schema{
		Type:        genai.Type(strings.ToUpper(string(s.Type))),
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = ConvertSchema(prop)
		}
		out.PropertyOrdering = s.Required
	}
	if s.Items != nil {
		out.Items = ConvertSchema(s.Items)
	}
	return out
}
