package gemini_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/jobparse"
	"github.com/fwojciec/jobparse/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeGenerator implements gemini.Generator.
type fakeGenerator struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return f.GenerateContentFn(ctx, model, contents, config)
}

func replying(text string) *fakeGenerator {
	return &fakeGenerator{
		GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
				}},
			}, nil
		},
	}
}

var eventSchema = &jobparse.Schema{
	Type: jobparse.TypeObject,
	Properties: map[string]*jobparse.Schema{
		"name":         {Type: jobparse.TypeString, Description: "Event name"},
		"participants": {Type: jobparse.TypeArray, Items: &jobparse.Schema{Type: jobparse.TypeString}},
	},
	Required: []string{"name", "participants"},
}

func TestCompleter_Complete_ReturnsText(t *testing.T) {
	t.Parallel()

	c := gemini.NewCompleter(replying(`{"name":"Fair","participants":[]}`), "")

	reply, err := c.Complete(context.Background(), &jobparse.CompletionRequest{User: "text", Schema: eventSchema})

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Fair","participants":[]}`, reply)
}

func TestCompleter_Complete_SendsModelAndUserMessage(t *testing.T) {
	t.Parallel()

	var gotModel string
	var gotContents []*genai.Content
	models := &fakeGenerator{
		GenerateContentFn: func(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			gotModel, gotContents = model, contents
			return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "ok"}}}}}}, nil
		},
	}

	_, err := gemini.NewCompleter(models, "").Complete(context.Background(), &jobparse.CompletionRequest{User: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", gotModel)
	require.Len(t, gotContents, 1)
	assert.Equal(t, "hello", gotContents[0].Parts[0].Text)
}

func TestCompleter_Complete_ReturnsErrorWhenUserEmpty(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewCompleter(nil, "").Complete(context.Background(), &jobparse.CompletionRequest{})

	require.Error(t, err)
	assert.Equal(t, jobparse.EINVALID, jobparse.ErrorCode(err))
	assert.Contains(t, jobparse.ErrorMessage(err), "user message required")
}

func TestCompleter_Complete_ReturnsErrorWhenClientNil(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewCompleter(nil, "").Complete(context.Background(), &jobparse.CompletionRequest{User: "text"})

	require.Error(t, err)
	assert.Equal(t, jobparse.EINTERNAL, jobparse.ErrorCode(err))
}

func TestCompleter_Complete_WrapsAPIError(t *testing.T) {
	t.Parallel()

	models := &fakeGenerator{
		GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return nil, errors.New("quota exceeded")
		},
	}

	_, err := gemini.NewCompleter(models, "").Complete(context.Background(), &jobparse.CompletionRequest{User: "text"})

	require.Error(t, err)
	assert.Equal(t, jobparse.EUNAVAILABLE, jobparse.ErrorCode(err))
	assert.Equal(t, "gemini request failed: quota exceeded", jobparse.ErrorMessage(err))
}

func TestCompleter_Complete_ReturnsErrorWhenPromptBlocked(t *testing.T) {
	t.Parallel()

	models := &fakeGenerator{
		GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			}, nil
		},
	}

	_, err := gemini.NewCompleter(models, "").Complete(context.Background(), &jobparse.CompletionRequest{User: "text"})

	require.Error(t, err)
	assert.Contains(t, jobparse.ErrorMessage(err), "prompt blocked")
}

func TestCompleter_Complete_ReturnsErrorWhenNoCandidates(t *testing.T) {
	t.Parallel()

	models := &fakeGenerator{
		GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{}, nil
		},
	}

	_, err := gemini.NewCompleter(models, "").Complete(context.Background(), &jobparse.CompletionRequest{User: "text"})

	require.Error(t, err)
	assert.Contains(t, jobparse.ErrorMessage(err), "no candidates")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(&jobparse.CompletionRequest{System: "You are a helpful assistant.", User: "hi"})

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are a helpful assistant.", config.SystemInstruction.Parts[0].Text)
	assert.Empty(t, config.ResponseMIMEType)
	assert.Nil(t, config.ResponseSchema)
}

func TestBuildConfig_RequestsJSONWithSchema(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(&jobparse.CompletionRequest{User: "hi", Schema: eventSchema})

	assert.Nil(t, config.SystemInstruction)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.ResponseSchema)
	assert.Equal(t, genai.TypeObject, config.ResponseSchema.Type)
}

func TestConvertSchema_TranslatesNestedTypes(t *testing.T) {
	t.Parallel()

	s := gemini.ConvertSchema(eventSchema)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"name", "participants"}, s.Required)
	assert.Equal(t, []string{"name", "participants"}, s.PropertyOrdering)
	assert.Equal(t, genai.TypeString, s.Properties["name"].Type)
	assert.Equal(t, "Event name", s.Properties["name"].Description)
	require.NotNil(t, s.Properties["participants"].Items)
	assert.Equal(t, genai.TypeArray, s.Properties["participants"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["participants"].Items.Type)
}
