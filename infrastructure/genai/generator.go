// Package genai implements the sample-data generator port on top of
// Google's Gemini API. It asks the model for team names and judging
// criteria for a topic using a structured-output schema, assigns fresh
// identifiers locally, and classifies service failures into typed errors.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"github.com/hackdash/hackdash/internal/domain"
	"github.com/hackdash/hackdash/internal/ports"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

var _ ports.SampleDataGenerator = (*Generator)(nil)

// Config holds the settings needed to reach the Gemini API.
type Config struct {
	// APIKey authenticates against the Gemini API. Generation fails
	// explicitly when it is empty.
	APIKey string

	// Model names the generative model. Defaults to DefaultModel.
	Model string
}

// contentModel is the minimal surface of the Gemini client the generator
// needs. Narrowing it keeps the parsing and error-classification logic
// testable without a live service.
type contentModel interface {
	generateContent(ctx context.Context, model, prompt string) (string, error)
}

// Generator produces sample hackathon setups from the Gemini API.
type Generator struct {
	model      string
	client     contentModel
	classifier errorClassifier
}

// NewGenerator creates a Gemini-backed generator. It returns
// ports.ErrAPIKeyMissing when no API key is configured, so a
// misconfigured deployment fails at construction rather than silently at
// generation time.
func NewGenerator(ctx context.Context, config Config) (*Generator, error) {
	if config.APIKey == "" {
		return nil, ports.ErrAPIKeyMissing
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Generator{
		model:      model,
		client:     &geminiModel{client: client},
		classifier: errorClassifier{model: model},
	}, nil
}

// sampleSchema constrains the model's response to the exact payload shape
// the dashboard applies: team names plus named, bounded criteria.
var sampleSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"groups": {
			Type:        genai.TypeArray,
			Description: "A list of creative and tech-themed team names for a hackathon.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {
						Type:        genai.TypeString,
						Description: "The name of the hackathon team.",
					},
				},
				Required: []string{"name"},
			},
		},
		"criteria": {
			Type:        genai.TypeArray,
			Description: "A list of judging criteria for the hackathon.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {
						Type:        genai.TypeString,
						Description: "The name of the criterion, e.g., 'Innovation' or 'Technical Complexity'.",
					},
					"maxScore": {
						Type:        genai.TypeInteger,
						Description: "The maximum score for this criterion, typically 10 or 20.",
					},
				},
				Required: []string{"name", "maxScore"},
			},
		},
	},
	Required: []string{"groups", "criteria"},
}

// samplePayload mirrors the structured-output schema.
type samplePayload struct {
	Groups []struct {
		Name string `json:"name"`
	} `json:"groups"`
	Criteria []struct {
		Name     string `json:"name"`
		MaxScore int    `json:"maxScore"`
	} `json:"criteria"`
}

// Generate asks the model for a sample setup for the given topic. The
// returned groups and criteria carry fresh locally generated identifiers;
// the model only ever supplies names and score bounds.
func (g *Generator) Generate(ctx context.Context, topic string) (ports.SampleData, error) {
	prompt := fmt.Sprintf(
		"Generate a list of 10 team names and 5 judging criteria for a hackathon about %q. "+
			"The criteria should have appropriate maximum scores.", topic)

	text, err := g.client.generateContent(ctx, g.model, prompt)
	if err != nil {
		return ports.SampleData{}, g.classifier.classify("generate", err)
	}

	return g.parseSampleData(text)
}

// parseSampleData decodes the model's JSON response into domain entities.
// Entries the model produced with empty or invalid fields are dropped; a
// response with nothing usable in it is reported as invalid.
func (g *Generator) parseSampleData(text string) (ports.SampleData, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ports.SampleData{}, ports.NewGeneratorError(g.model, "generate", ports.ErrEmptyResponse)
	}

	var payload samplePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return ports.SampleData{}, ports.NewGeneratorError(g.model, "parse",
			fmt.Errorf("%w: %v", ports.ErrInvalidResponse, err))
	}

	var sample ports.SampleData
	for _, raw := range payload.Groups {
		group, err := domain.NewGroup(raw.Name)
		if err != nil {
			continue
		}
		sample.Groups = append(sample.Groups, group)
	}
	for _, raw := range payload.Criteria {
		criterion, err := domain.NewCriterion(raw.Name, raw.MaxScore)
		if err != nil {
			continue
		}
		sample.Criteria = append(sample.Criteria, criterion)
	}

	if len(sample.Groups) == 0 || len(sample.Criteria) == 0 {
		return ports.SampleData{}, ports.NewGeneratorError(g.model, "parse", ports.ErrInvalidResponse)
	}
	return sample, nil
}

// geminiModel adapts the real Gemini client to the contentModel surface.
type geminiModel struct {
	client *genai.Client
}

func (m *geminiModel) generateContent(ctx context.Context, model, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   sampleSchema,
	}

	resp, err := m.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// errorClassifier maps raw service errors onto the port's error taxonomy.
type errorClassifier struct {
	model string
}

func (c errorClassifier) classify(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ports.NewGeneratorError(c.model, operation, ports.ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return ports.NewGeneratorError(c.model, operation, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return ports.NewGeneratorError(c.model, operation,
				fmt.Errorf("%w: %s", ports.ErrAuthenticationFailed, apiErr.Message))
		case apiErr.Code == 429:
			return ports.NewGeneratorError(c.model, operation,
				fmt.Errorf("%w: %s", ports.ErrRateLimited, apiErr.Message))
		case apiErr.Code >= 500:
			return ports.NewGeneratorError(c.model, operation,
				fmt.Errorf("%w: %s", ports.ErrServiceUnavailable, apiErr.Message))
		}
	}

	return ports.NewGeneratorError(c.model, operation, err)
}
