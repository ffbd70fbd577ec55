package genai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/hackdash/hackdash/internal/ports"
)

// stubModel returns a canned response or error.
type stubModel struct {
	response string
	err      error
	prompts  []string
}

func (m *stubModel) generateContent(_ context.Context, _ string, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func newTestGenerator(client contentModel) *Generator {
	return &Generator{
		model:      DefaultModel,
		client:     client,
		classifier: errorClassifier{model: DefaultModel},
	}
}

const validResponse = `{
	"groups": [{"name": "Neural Knights"}, {"name": "Bit Wizards"}],
	"criteria": [{"name": "Innovation", "maxScore": 10}, {"name": "Impact", "maxScore": 20}]
}`

func TestGenerator_Generate(t *testing.T) {
	stub := &stubModel{response: validResponse}
	gen := newTestGenerator(stub)

	sample, err := gen.Generate(context.Background(), "Sustainable Tech")
	require.NoError(t, err)

	require.Len(t, sample.Groups, 2)
	assert.Equal(t, "Neural Knights", sample.Groups[0].Name)
	assert.NotEmpty(t, sample.Groups[0].ID, "identifiers are assigned locally")
	assert.NotEqual(t, sample.Groups[0].ID, sample.Groups[1].ID)

	require.Len(t, sample.Criteria, 2)
	assert.Equal(t, "Innovation", sample.Criteria[0].Name)
	assert.Equal(t, 10, sample.Criteria[0].MaxScore)
	assert.NotEmpty(t, sample.Criteria[0].ID)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Sustainable Tech")
	assert.Contains(t, stub.prompts[0], "10 team names")
	assert.Contains(t, stub.prompts[0], "5 judging criteria")
}

func TestGenerator_ParseFailures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  error
	}{
		{name: "empty response", response: "   ", wantErr: ports.ErrEmptyResponse},
		{name: "malformed json", response: "{oops", wantErr: ports.ErrInvalidResponse},
		{name: "no groups", response: `{"groups": [], "criteria": [{"name": "Innovation", "maxScore": 10}]}`, wantErr: ports.ErrInvalidResponse},
		{name: "no criteria", response: `{"groups": [{"name": "Alpha"}], "criteria": []}`, wantErr: ports.ErrInvalidResponse},
		{
			name: "all entries invalid",
			response: `{"groups": [{"name": ""}],
				"criteria": [{"name": "Innovation", "maxScore": 0}]}`,
			wantErr: ports.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newTestGenerator(&stubModel{response: tt.response})
			_, err := gen.Generate(context.Background(), "topic")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var genErr *ports.GeneratorError
			assert.ErrorAs(t, err, &genErr)
		})
	}
}

func TestGenerator_DropsInvalidEntries(t *testing.T) {
	response := `{
		"groups": [{"name": "Alpha"}, {"name": "  "}],
		"criteria": [{"name": "Innovation", "maxScore": 10}, {"name": "Broken", "maxScore": -1}]
	}`
	gen := newTestGenerator(&stubModel{response: response})

	sample, err := gen.Generate(context.Background(), "topic")
	require.NoError(t, err)
	assert.Len(t, sample.Groups, 1)
	assert.Len(t, sample.Criteria, 1)
}

func TestErrorClassifier(t *testing.T) {
	classifier := errorClassifier{model: DefaultModel}

	tests := []struct {
		name      string
		err       error
		wantErr   error
		retryable bool
	}{
		{
			name:    "deadline exceeded maps to timeout",
			err:     context.DeadlineExceeded,
			wantErr: ports.ErrTimeout, retryable: true,
		},
		{
			name:    "unauthorized maps to authentication failure",
			err:     &googleapi.Error{Code: 401, Message: "bad key"},
			wantErr: ports.ErrAuthenticationFailed,
		},
		{
			name:    "forbidden maps to authentication failure",
			err:     &googleapi.Error{Code: 403, Message: "denied"},
			wantErr: ports.ErrAuthenticationFailed,
		},
		{
			name:    "too many requests maps to rate limited",
			err:     &googleapi.Error{Code: 429, Message: "slow down"},
			wantErr: ports.ErrRateLimited, retryable: true,
		},
		{
			name:    "server error maps to service unavailable",
			err:     &googleapi.Error{Code: 503, Message: "overloaded"},
			wantErr: ports.ErrServiceUnavailable, retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifier.classify("generate", tt.err)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var genErr *ports.GeneratorError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, DefaultModel, genErr.Model)
			assert.Equal(t, tt.retryable, genErr.IsRetryable())
		})
	}
}

func TestGenerator_PropagatesServiceError(t *testing.T) {
	stub := &stubModel{err: &googleapi.Error{Code: 429, Message: "quota"}}
	gen := newTestGenerator(stub)

	_, err := gen.Generate(context.Background(), "topic")
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrRateLimited)
}

func TestNewGenerator_RequiresAPIKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), Config{})
	require.ErrorIs(t, err, ports.ErrAPIKeyMissing)
}

func TestGeneratorError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := ports.NewGeneratorError("m", "op", inner)
	assert.ErrorIs(t, err, inner)
	assert.False(t, err.IsRetryable())
}
