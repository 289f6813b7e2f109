// Package openai implements structured completions using the OpenAI chat
// completions API.
package openai

import (
	"context"

	"github.com/fwojciec/jobparse"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4o

// Ensure Completer implements jobparse.Completer at compile time.
var _ jobparse.Completer = (*Completer)(nil)

// Client is the subset of *openai.Client used by Completer.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Completer implements jobparse.Completer using OpenAI chat completions.
type Completer struct {
	client Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// NewClient creates an OpenAI client for the given API key. A non-empty
// baseURL points the client at an OpenAI-compatible endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Complete sends a system and a user message. When req.Schema is set the
// reply is constrained with a strict JSON schema response format.
func (c *Completer) Complete(ctx context.Context, req *jobparse.CompletionRequest) (string, error) {
	if req == nil || req.User == "" {
		return "", jobparse.Errorf(jobparse.EINVALID, "user message required")
	}
	if c.client == nil {
		return "", jobparse.Errorf(jobparse.EINTERNAL, "openai client not configured")
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, req))
	if err != nil {
		return "", jobparse.WrapError(jobparse.EUNAVAILABLE, err, "openai request failed")
	}

	if len(resp.Choices) == 0 {
		return "", jobparse.Errorf(jobparse.EINTERNAL, "openai returned no choices")
	}
	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return "", jobparse.Errorf(jobparse.EINVALID, "model refused: %s", choice.Message.Refusal)
	}
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return "", jobparse.Errorf(jobparse.EINVALID, "reply blocked by content filter")
	}

	return choice.Message.Content, nil
}

// BuildRequest returns the chat completion request for req.
func BuildRequest(model string, req *jobparse.CompletionRequest) openai.ChatCompletionRequest {
	out := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	}
	if req.Schema != nil {
		def := ConvertSchema(req.Schema)
		name := req.Name
		if name == "" {
			name = "response"
		}
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: &def,
				Strict: true,
			},
		}
	}
	return out
}

// ConvertSchema translates a jobparse.Schema into a JSON schema definition.
// Objects disallow additional properties, as strict mode requires.
func ConvertSchema(s *jobparse.Schema) jsonschema.Definition {
	def := jsonschema.Definition{
		Type:        jsonschema.DataType(s.Type),
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
	}
	if s.Type == jobparse.TypeObject {
		def.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			def.Properties[name] = ConvertSchema(prop)
		}
		def.AdditionalProperties = false
	}
	if s.Items != nil {
		items := ConvertSchema(s.Items)
		def.Items = &items
	}
	return def
}
