package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/command"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("no response from model")

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const systemPrompt = "You convert a user's request into a JSON command for searching restaurants. " +
	"Return ONLY a JSON object that matches this schema:"

// commandResponseSchema constrains the model output to the command shape.
// The schema is deliberately looser than the command validator (the model
// cannot be trusted either way); everything it emits still goes through
// command.ParseCommand.
var commandResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"action": {Type: genai.TypeString, Enum: []string{string(command.ActionSearchRestaurants)}},
		"parameters": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"query": {Type: genai.TypeString},
				"near":  {Type: genai.TypeString},
				"ll": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"latitude":  {Type: genai.TypeNumber},
						"longitude": {Type: genai.TypeNumber},
					},
					Required: []string{"latitude", "longitude"},
				},
				"open_now":   {Type: genai.TypeBoolean},
				"price":      {Type: genai.TypeString, Pattern: "^[1-4]$"},
				"min_rating": {Type: genai.TypeNumber},
				"limit":      {Type: genai.TypeNumber},
				"radius_m":   {Type: genai.TypeNumber},
			},
			Required: []string{"query"},
		},
	},
	Required: []string{"action", "parameters"},
}

// GeminiParser turns free-text messages into validated Commands using a
// schema-constrained Gemini call.
type GeminiParser struct {
	client *genai.Client
	model  string
}

// NewGeminiParser initializes the genai client against the Gemini API
// backend.
func NewGeminiParser(ctx context.Context, apiKey, model string) (*GeminiParser, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &GeminiParser{client: client, model: model}, nil
}

// ParseCommand asks the model for a structured command and validates the
// result. Model output that does not survive validation is a
// *command.ValidationError, same as any other untrusted input.
func (p *GeminiParser) ParseCommand(ctx context.Context, message string) (*command.Command, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0)),
		ResponseMIMEType: "application/json",
		ResponseSchema:   commandResponseSchema,
	}

	prompt := systemPrompt + "\nUser Message: " + message
	resp, err := p.client.Models.GenerateContent(ctx, p.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, config)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	return command.ParseCommand([]byte(text))
}
