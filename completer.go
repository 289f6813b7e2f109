package jobparse

import "context"

// Schema describes the shape of a structured reply in a provider-neutral way.
// Backends translate it into their own schema representation.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
}

// SchemaType is a JSON schema primitive type.
type SchemaType string

// SchemaType constants.
const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
)

// CompletionRequest is a two-message exchange with a model.
type CompletionRequest struct {
	// Name identifies the requested output shape, e.g. "vacancy".
	Name string

	// System is the instruction message.
	System string

	// User is the only user message.
	User string

	// Schema constrains the reply. Nil requests plain text.
	Schema *Schema
}

// Completer sends completion requests to a hosted language model.
type Completer interface {
	// Complete returns the model's reply. When req.Schema is set the reply
	// is a JSON document conforming to it.
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
