package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/moneta-app/moneta/internal/advisor"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Fixed decoding parameters for advisory completions.
const (
	temperature     = 0.7
	maxOutputTokens = 500
)

// Client calls the Gemini generateContent REST endpoint. It performs no
// retries and caches nothing; every Generate call is one round trip.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the prompt to the model and returns the completion text.
// Failures come back as typed *advisor.Error values.
func (c *Client) Generate(ctx context.Context, prompt advisor.Prompt) (string, error) {
	if c.apiKey == "" {
		return "", advisor.NewError(advisor.KindUnavailable, "gemini API key is not configured")
	}

	payload := generateRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: prompt.SystemInstruction}},
		},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt.UserText}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", advisor.NewError(advisor.KindUnknown, fmt.Sprintf("encoding request: %v", err))
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", advisor.NewError(advisor.KindUnknown, fmt.Sprintf("building request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", advisor.NewError(advisor.KindUnavailable, fmt.Sprintf("calling gemini: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyFailure(resp)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", advisor.NewError(advisor.KindUnknown, fmt.Sprintf("decoding response: %v", err))
	}

	text := completionText(out)
	if text == "" {
		return "", advisor.NewError(advisor.KindEmptyResponse, "gemini returned no usable text")
	}

	return text, nil
}

func completionText(out generateResponse) string {
	if len(out.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return strings.TrimSpace(sb.String())
}

// classifyFailure maps an API error response onto the advisory taxonomy. The
// raw message is preserved on the returned error.
func classifyFailure(resp *http.Response) *advisor.Error {
	raw, _ := io.ReadAll(resp.Body)

	message := strings.TrimSpace(string(raw))

	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}

	// A rejected key surfaces as 400 INVALID_ARGUMENT, not 401.
	if strings.Contains(message, "API key not valid") || strings.Contains(apiErr.Error.Status, "UNAUTHENTICATED") {
		return advisor.NewError(advisor.KindInvalidCredential, message)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return advisor.NewError(advisor.KindInvalidCredential, message)
	case http.StatusForbidden:
		return advisor.NewError(advisor.KindPermissionDenied, message)
	case http.StatusNotFound:
		return advisor.NewError(advisor.KindModelNotFound, message)
	case http.StatusTooManyRequests:
		return advisor.NewError(advisor.KindQuotaExceeded, message)
	case http.StatusServiceUnavailable:
		return advisor.NewError(advisor.KindUnavailable, message)
	default:
		return advisor.NewError(advisor.KindUnknown, fmt.Sprintf("gemini API error: %d - %s", resp.StatusCode, message))
	}
}
